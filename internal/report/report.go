// ABOUTME: Common result-table type produced by every projector.
// ABOUTME: A Report is columns plus string rows, ready for rendering or export.
package report

// Report is the result of one summary projection: an ordered column set and
// one row per output record. Cells are display-ready strings; numeric
// interpretation stays with the source tables.
type Report struct {
	Title   string     `json:"title" yaml:"title"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Empty reports whether the projection produced no rows.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}

// Len returns the number of result rows.
func (r *Report) Len() int {
	return len(r.Rows)
}

// Cell returns the value in the named column of a row, or "" when absent.
func (r *Report) Cell(row int, column string) string {
	for i, c := range r.Columns {
		if c == column && row >= 0 && row < len(r.Rows) && i < len(r.Rows[row]) {
			return r.Rows[row][i]
		}
	}
	return ""
}
