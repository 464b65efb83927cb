// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"marks/pkg/api"
)

// ToAPISheet converts a sheet to the stable wire schema (v1).
func ToAPISheet(s Sheet) api.MarkSheetV1 {
	rows := s.Table.Rows()
	v := api.MarkSheetV1{
		RunID:       s.RunID,
		Assignments: s.Table.Assignments(),
		Students:    make([]api.StudentMarksV1, 0, len(rows)),
	}
	for _, r := range rows {
		v.Students = append(v.Students, api.StudentMarksV1{Student: r.Student, Scores: r.Scores})
	}
	return v
}

// WriteJSON writes a single two-space indented v1 document.
func WriteJSON(w io.Writer, s Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPISheet(s))
}
