// pkg/api/marks_v1.go
package api

// MarkSheetV1 is the stable JSON schema for a generated mark sheet.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MarkSheetV1 struct {
	RunID       string           `json:"run_id,omitempty"`
	Assignments []string         `json:"assignments"`
	Students    []StudentMarksV1 `json:"students"`
}

// StudentMarksV1 holds one student's scores in assignment order.
type StudentMarksV1 struct {
	Student string `json:"student"`
	Scores  []int  `json:"scores"`
}
