// Package grades synthesizes score tables.
//
// A Table has one row per student and one score column per assignment.
// Scores are drawn from a Sampler, rounded half away from zero (math.Round)
// and clamped into [MinScore, MaxScore]. Draws happen in row-major order, so
// a seeded Sampler reproduces the same table.
package grades
