// internal/output/summary.go
package output

import (
	"bytes"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"marks/internal/grades"
)

// AssignmentStats summarizes one score column.
type AssignmentStats struct {
	Assignment string
	Count      int
	Mean       decimal.Decimal // rounded half-up to 2 places
	Min        int
	Max        int
}

// Summarize computes per-assignment statistics in assignment order.
// Assignments with no scores report a zero mean and zero bounds.
func Summarize(t *grades.Table) []AssignmentStats {
	names := t.Assignments()
	out := make([]AssignmentStats, 0, len(names))
	for j, name := range names {
		col := t.Column(j)
		st := AssignmentStats{Assignment: name, Count: len(col), Mean: decimal.Zero}
		if len(col) == 0 {
			out = append(out, st)
			continue
		}
		sum := int64(0)
		st.Min, st.Max = col[0], col[0]
		for _, v := range col {
			sum += int64(v)
			if v < st.Min {
				st.Min = v
			}
			if v > st.Max {
				st.Max = v
			}
		}
		st.Mean = decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(col)))).Round(2)
		out = append(out, st)
	}
	return out
}

// WriteSummary renders stats as an ASCII table. The table is rendered in
// memory first so a failing w is reported.
func WriteSummary(w io.Writer, stats []AssignmentStats) error {
	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"Assignment", "Mean", "Min", "Max"})
	for _, st := range stats {
		tw.Append([]string{
			st.Assignment,
			st.Mean.StringFixed(2),
			strconv.Itoa(st.Min),
			strconv.Itoa(st.Max),
		})
	}
	tw.Render()
	_, err := buf.WriteTo(w)
	return err
}
