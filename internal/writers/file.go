// internal/writers/file.go
package writers

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"marks/internal/output"
)

// ErrWrite marks a failure to create or write the output file.
var ErrWrite = errors.New("could not write output")

// WriteFile renders s in format to path, truncating any existing file.
// The handle is flushed and closed on every path; a partially written file
// is left in place.
func WriteFile(path, format string, s output.Sheet) (err error) {
	if !Known(format) {
		return errors.Errorf("unknown sheet format %q (no writer registered)", format)
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}
	bw := bufio.NewWriter(fh)
	defer func() {
		ferr := bw.Flush()
		cerr := fh.Close()
		if err != nil {
			return
		}
		if ferr != nil {
			err = errors.Wrapf(ErrWrite, "%s: %v", path, ferr)
		} else if cerr != nil {
			err = errors.Wrapf(ErrWrite, "%s: %v", path, cerr)
		}
	}()

	if werr := WriteSheet(format, bw, s); werr != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, werr)
	}
	return nil
}

// IsWriteError reports whether err came from WriteFile's file handling.
func IsWriteError(err error) bool {
	return err != nil && errors.Cause(err) == ErrWrite
}
