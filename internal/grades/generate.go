package grades

import "math"

// Valid score range.
const (
	MinScore = 0
	MaxScore = 100
)

// Generate builds a len(students) × (len(assignments)+1) table. Empty inputs
// give an empty table (no rows, or rows without scores); callers guard that.
func Generate(students, assignments []string, s Sampler) *Table {
	t := &Table{
		assignments: append([]string(nil), assignments...),
		rows:        make([]Row, len(students)),
	}
	for i, name := range students {
		scores := make([]int, len(assignments))
		for j := range assignments {
			scores[j] = Clamp(Round(s.Sample()))
		}
		t.rows[i] = Row{Student: name, Scores: scores}
	}
	return t
}

// Round rounds half away from zero. It does not clamp: NaN gives 0 and
// values beyond the int32 range saturate at its bounds.
func Round(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(x))
}

// Clamp pins v into [MinScore, MaxScore].
func Clamp(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
