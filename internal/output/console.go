// internal/output/console.go
package output

import (
	"fmt"
	"io"
	"strings"

	"marks/internal/grades"
)

// FormatConsoleRow renders `Name: "s1" "s2" ... "sN"`.
func FormatConsoleRow(r grades.Row) string {
	var b strings.Builder
	b.WriteString(r.Student)
	b.WriteByte(':')
	for _, s := range r.Scores {
		fmt.Fprintf(&b, " \"%d\"", s)
	}
	return b.String()
}

// WriteConsole prints one line per student.
func WriteConsole(w io.Writer, t *grades.Table) error {
	for _, r := range t.Rows() {
		if _, err := fmt.Fprintln(w, FormatConsoleRow(r)); err != nil {
			return err
		}
	}
	return nil
}
