// internal/output/fixed.go
package output

import (
	"fmt"
	"io"
	"strings"
)

// FieldWidth is the column width of the fixed-width sheet.
const FieldWidth = 15

// FormatFixedRow left-justifies every field to FieldWidth runes. Longer
// fields are kept whole. No trailing newline.
func FormatFixedRow(fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%-*s", FieldWidth, f)
	}
	return b.String()
}

// WriteFixed writes the header row then one row per student.
func WriteFixed(w io.Writer, s Sheet) error {
	if _, err := io.WriteString(w, FormatFixedRow(headerRow(s.Table))+"\n"); err != nil {
		return err
	}
	for _, row := range s.Table.Cells() {
		if _, err := io.WriteString(w, FormatFixedRow(row)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
