// internal/output/delimited.go
package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes an RFC 4180 sheet with a header row.
func WriteCSV(w io.Writer, s Sheet) error {
	return writeDelimited(w, s, ',')
}

// WriteTSV writes a tab-separated sheet with a header row.
func WriteTSV(w io.Writer, s Sheet) error {
	return writeDelimited(w, s, '\t')
}

func writeDelimited(w io.Writer, s Sheet, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(headerRow(s.Table)); err != nil {
		return err
	}
	if err := cw.WriteAll(s.Table.Cells()); err != nil {
		return err
	}
	return cw.Error()
}
