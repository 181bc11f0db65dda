package models

import (
	"time"
)

// Table is one uploaded CSV. Rows keep the raw cell text, typed values are
// derived on demand so the table survives a JSON round trip unchanged.
type Table struct {
	ID         string     `json:"id"`
	FileName   string     `json:"fileName"`
	Columns    []string   `json:"columns"`
	Rows       [][]string `json:"rows"`
	UploadedAt time.Time  `json:"uploadedAt"`
}

// ColumnIndex returns the position of the column with the exact given name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// NonMissing returns up to limit non-missing raw values of column idx in row
// order. A limit <= 0 means no limit.
func (t *Table) NonMissing(idx int, limit int) []string {
	var values []string
	for _, row := range t.Rows {
		if idx >= len(row) || IsMissing(row[idx]) {
			continue
		}
		values = append(values, row[idx])
		if limit > 0 && len(values) == limit {
			break
		}
	}
	return values
}

// Column returns every raw value of column idx, missing ones included.
func (t *Table) Column(idx int) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values
}

// Sample returns the first n rows as objects keyed by column name, with
// native-typed values and nil for missing cells.
func (t *Table) Sample(n int) []map[string]any {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	sample := make([]map[string]any, 0, n)
	for _, row := range t.Rows[:n] {
		record := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			var raw string
			if i < len(row) {
				raw = row[i]
			}
			record[col] = ParseCell(raw).Native()
		}
		sample = append(sample, record)
	}
	return sample
}
