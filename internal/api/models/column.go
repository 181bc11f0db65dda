package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ColumnType is the coarse Vega-Lite field type of a column.
type ColumnType string

const (
	ColumnTypeQuantitative ColumnType = "quantitative"
	ColumnTypeNominal      ColumnType = "nominal"
	ColumnTypeTemporal     ColumnType = "temporal"
	ColumnTypeUnknown      ColumnType = "unknown"
)

// ColumnDescriptor describes a column for the visualization prompt.
type ColumnDescriptor struct {
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	Samples []string   `json:"samples"`
}

// CellKind is the native type of a single cell.
type CellKind int

const (
	CellMissing CellKind = iota
	CellInteger
	CellFloat
	CellBool
	CellTime
	CellString
)

// Cell is a parsed CSV value.
type Cell struct {
	Raw   string
	Kind  CellKind
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

// cell texts read as missing values
var missingMarkers = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"#N/A":     {},
	"#NA":      {},
	"<NA>":     {},
	"-1.#IND":  {},
	"1.#QNAN":  {},
	"1.#IND":   {},
	"-1.#QNAN": {},
	"#N/A N/A": {},
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// IsMissing reports whether raw is one of the missing-value markers.
func IsMissing(raw string) bool {
	_, ok := missingMarkers[strings.TrimSpace(raw)]
	return ok
}

// ParseCell types raw as integer, float, boolean, timestamp or string, in
// that order of preference.
func ParseCell(raw string) Cell {
	c := Cell{Raw: raw}
	v := strings.TrimSpace(raw)
	if IsMissing(v) {
		c.Kind = CellMissing
		return c
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		c.Kind, c.Int = CellInteger, i
		return c
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		c.Kind, c.Float = CellFloat, f
		return c
	}
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		c.Kind, c.Bool = CellBool, strings.EqualFold(v, "true")
		return c
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			c.Kind, c.Time = CellTime, t
			return c
		}
	}
	c.Kind = CellString
	return c
}

// Native returns the value in a JSON-friendly form. Timestamps keep their
// raw text and non-finite floats fall back to the raw text as well.
func (c Cell) Native() any {
	switch c.Kind {
	case CellMissing:
		return nil
	case CellInteger:
		return c.Int
	case CellFloat:
		if math.IsInf(c.Float, 0) || math.IsNaN(c.Float) {
			return c.Raw
		}
		return c.Float
	case CellBool:
		return c.Bool
	default:
		return c.Raw
	}
}

// InferColumnType derives the coarse type from the native types of values.
// Booleans and mixed columns are nominal, an all-missing column is unknown.
func InferColumnType(values []string) ColumnType {
	var numeric, temporal, other int
	for _, raw := range values {
		switch ParseCell(raw).Kind {
		case CellMissing:
		case CellInteger, CellFloat:
			numeric++
		case CellTime:
			temporal++
		default:
			other++
		}
	}

	switch {
	case numeric+temporal+other == 0:
		return ColumnTypeUnknown
	case numeric > 0 && temporal+other == 0:
		return ColumnTypeQuantitative
	case temporal > 0 && numeric+other == 0:
		return ColumnTypeTemporal
	default:
		return ColumnTypeNominal
	}
}

// Describe builds the descriptor of every column with up to sampleSize
// non-missing sample values each.
func (t *Table) Describe(sampleSize int) []ColumnDescriptor {
	descriptors := make([]ColumnDescriptor, 0, len(t.Columns))
	for i, name := range t.Columns {
		descriptors = append(descriptors, ColumnDescriptor{
			Name:    name,
			Type:    InferColumnType(t.Column(i)),
			Samples: t.NonMissing(i, sampleSize),
		})
	}
	return descriptors
}
