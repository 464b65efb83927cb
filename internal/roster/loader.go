// internal/roster/loader.go
package roster

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound marks a roster file that does not exist or cannot be opened.
var ErrNotFound = errors.New("not found")

// List is an ordered sequence of trimmed, non-empty names. Order is
// significant and duplicates are kept.
type List []string

// Load reads one name per line from path. A missing or unreadable file
// yields an empty list and an error wrapping ErrNotFound.
func Load(path string) (List, error) {
	fh, err := os.Open(path)
	if err != nil {
		return List{}, errors.Wrapf(ErrNotFound, "%s: %v", path, err)
	}
	defer func() { _ = fh.Close() }()

	list, err := Read(fh)
	if err != nil {
		return List{}, errors.Wrapf(err, "reading %s", path)
	}
	return list, nil
}

// Read scans r line by line, trimming whitespace and skipping blank lines.
func Read(r io.Reader) (List, error) {
	list := List{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return List{}, err
	}
	return list, nil
}

// IsNotFound reports whether err came from a roster file that could not be opened.
func IsNotFound(err error) bool {
	return err != nil && errors.Cause(err) == ErrNotFound
}

// Empty reports whether the list holds no names.
func (l List) Empty() bool { return len(l) == 0 }
