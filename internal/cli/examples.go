// internal/cli/examples.go
package cli

import (
	"fmt"
	"io"
)

// PrintExamples prints a short quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, `  # students.txt and assignments.txt in the current directory → marks.csv
  %[1]s

  # explicit inputs, true CSV output and a per-assignment summary
  %[1]s --students class.txt --assignments units.txt --output class.csv --format csv --summary

  # same via environment
  MARKS_FORMAT=json MARKS_OUTPUT=marks.json %[1]s
`, name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
