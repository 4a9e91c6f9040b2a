// ABOUTME: Immutable table type backing loaded ASA24 export categories.
// ABOUTME: Provides column lookup and typed cell access with field-tagged errors.
package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is a named, ordered collection of rows sharing one column schema.
// Tables are built once at load time and never mutated afterwards.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string

	colIndex map[string]int
}

// NewTable builds a Table and its column index.
func NewTable(name string, columns []string, rows [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{Name: name, Columns: columns, Rows: rows, colIndex: idx}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the schema contains the named column.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.colIndex[col]
	return ok
}

// HasColumns reports whether every named column is present.
func (t *Table) HasColumns(cols ...string) bool {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return false
		}
	}
	return true
}

// Require returns a FieldError naming the first missing column, or nil.
func (t *Table) Require(cols ...string) error {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return &FieldError{Table: t.Name, Row: -1, Column: c, Reason: "missing required column"}
		}
	}
	return nil
}

// Cell returns the raw value at (row, col). The second result is false when
// the column is absent or the row is ragged short of it.
func (t *Table) Cell(row int, col string) (string, bool) {
	i, ok := t.colIndex[col]
	if !ok || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Float parses the cell at (row, col) as a float64. Missing columns and
// non-numeric values surface as FieldErrors naming the offending field.
// Empty cells read as zero; sparse exports leave unconsumed groups blank.
func (t *Table) Float(row int, col string) (float64, error) {
	raw, ok := t.Cell(row, col)
	if !ok {
		return 0, &FieldError{Table: t.Name, Row: row, Column: col, Reason: "missing required column"}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Table: t.Name, Row: row, Column: col, Value: raw, Reason: "non-numeric value"}
	}
	return v, nil
}

// FieldError tags a malformed-input failure with its table, row, and column.
// Row is -1 for schema-level errors with no row in play.
type FieldError struct {
	Table  string
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s row %d: %s %q in column %s", e.Table, e.Row, e.Reason, e.Value, e.Column)
	}
	if e.Row >= 0 {
		return fmt.Sprintf("%s row %d: %s %s", e.Table, e.Row, e.Reason, e.Column)
	}
	return fmt.Sprintf("%s: %s %s", e.Table, e.Reason, e.Column)
}
