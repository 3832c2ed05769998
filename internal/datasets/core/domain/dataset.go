package domain

import (
	"bytes"
	"encoding/csv"
	"time"
)

// Table is a parsed tabular file: a header row plus string cells.
// Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

type Dataset struct {
	ID         string
	FileName   string
	Format     string // "csv" / "json"
	Table      Table
	SizeBytes  int64
	UploadedAt time.Time
}

func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Head returns at most n rows, sharing the underlying cells.
func (t Table) Head(n int) [][]string {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// CSV serializes the table back to comma separated text with a header row.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
