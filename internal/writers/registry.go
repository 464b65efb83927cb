// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"marks/internal/output"
)

// SheetWriters maps a format name to its renderer.
var SheetWriters = map[string]func(w io.Writer, s output.Sheet) error{}

func init() {
	RegisterSheet(output.FormatFixed, output.WriteFixed)
	RegisterSheet(output.FormatCSV, output.WriteCSV)
	RegisterSheet(output.FormatTSV, output.WriteTSV)
	RegisterSheet(output.FormatJSON, output.WriteJSON)
}

// RegisterSheet adds or replaces a format (last wins).
func RegisterSheet(format string, fn func(io.Writer, output.Sheet) error) { SheetWriters[format] = fn }

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := SheetWriters[format]
	return ok
}

// Names returns the registered formats, sorted.
func Names() []string {
	out := make([]string, 0, len(SheetWriters))
	for k := range SheetWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteSheet dispatches to the writer registered for format.
func WriteSheet(format string, w io.Writer, s output.Sheet) error {
	fn, ok := SheetWriters[format]
	if !ok {
		return fmt.Errorf("unknown sheet format %q (no writer registered)", format)
	}
	return fn(w, s)
}
