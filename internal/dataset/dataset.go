// ABOUTME: Immutable dataset snapshot of loaded ASA24 tables.
// ABOUTME: Holds the table map, derived subject index, and the subject filter.
package dataset

import (
	"sort"

	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

// Dataset is a read-only snapshot of one data-directory load. All analysis
// calls read from it; picking up changed source files means a fresh Load.
type Dataset struct {
	tables   map[string]*Table
	subjects []string
}

// New builds a Dataset from already-parsed tables and derives the subject
// index: the union of distinct UserName values across every table that
// carries a UserName column.
func New(tables map[string]*Table) *Dataset {
	seen := map[string]struct{}{}
	for _, t := range tables {
		if !t.HasColumn(models.ColUserName) {
			continue
		}
		for row := 0; row < t.Len(); row++ {
			if id, ok := t.Cell(row, models.ColUserName); ok && id != "" {
				seen[id] = struct{}{}
			}
		}
	}
	subjects := make([]string, 0, len(seen))
	for id := range seen {
		subjects = append(subjects, id)
	}
	sort.Strings(subjects)
	return &Dataset{tables: tables, subjects: subjects}
}

// Table returns the table for an export category, if loaded.
func (d *Dataset) Table(category string) (*Table, bool) {
	t, ok := d.tables[category]
	return t, ok
}

// Categories returns the loaded export category names, sorted.
func (d *Dataset) Categories() []string {
	names := make([]string, 0, len(d.tables))
	for name := range d.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subjects returns the derived subject index, sorted.
func (d *Dataset) Subjects() []string {
	out := make([]string, len(d.subjects))
	copy(out, d.subjects)
	return out
}

// Filter restricts a table to rows whose UserName is in the allowlist,
// preserving row order. A nil or empty allowlist returns the table
// unchanged. The input table is never mutated; subject ids that match no
// rows simply contribute nothing.
func Filter(t *Table, subjects []string) *Table {
	if len(subjects) == 0 {
		return t
	}
	allow := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		allow[s] = struct{}{}
	}
	rows := make([][]string, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		id, ok := t.Cell(row, models.ColUserName)
		if !ok {
			continue
		}
		if _, keep := allow[id]; keep {
			rows = append(rows, t.Rows[row])
		}
	}
	return NewTable(t.Name, t.Columns, rows)
}
