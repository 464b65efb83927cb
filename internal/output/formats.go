// internal/output/formats.go
package output

import (
	"marks/internal/grades"
)

// Sheet formats accepted by --format.
const (
	FormatFixed = "fixed"
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
)

// Formats lists every sheet format in help order.
var Formats = []string{FormatFixed, FormatCSV, FormatTSV, FormatJSON}

// HeaderLabel heads the name column of every tabular sheet.
const HeaderLabel = "Student"

// Sheet is what the file writers render.
type Sheet struct {
	RunID string
	Table *grades.Table
}

// headerRow is HeaderLabel followed by the assignment names.
func headerRow(t *grades.Table) []string {
	return append([]string{HeaderLabel}, t.Assignments()...)
}
