package grades

import "strconv"

// Row is one student's line of the table.
type Row struct {
	Student string
	Scores  []int
}

// Table is the generated score matrix. It is not mutated after Generate.
type Table struct {
	assignments []string
	rows        []Row
}

func (t *Table) Assignments() []string { return append([]string(nil), t.assignments...) }

func (t *Table) Students() []string {
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Student
	}
	return out
}

// Rows returns copies of the rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = Row{Student: r.Student, Scores: append([]int(nil), r.Scores...)}
	}
	return out
}

// Len is the number of students.
func (t *Table) Len() int { return len(t.rows) }

// Width is the number of cells per row: the name plus one per assignment.
func (t *Table) Width() int { return len(t.assignments) + 1 }

// Score returns the score of student i for assignment j (both zero-based).
func (t *Table) Score(i, j int) int { return t.rows[i].Scores[j] }

// Column returns every student's score for assignment j.
func (t *Table) Column(j int) []int {
	out := make([]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Scores[j]
	}
	return out
}

// Cells renders the table as strings: column 0 is the name, columns 1..M the scores.
func (t *Table) Cells() [][]string {
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		line := make([]string, 0, t.Width())
		line = append(line, r.Student)
		for _, s := range r.Scores {
			line = append(line, strconv.Itoa(s))
		}
		out[i] = line
	}
	return out
}
