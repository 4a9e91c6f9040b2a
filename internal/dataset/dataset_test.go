// ABOUTME: Tests for the dataset snapshot, subject index, and filter.
// ABOUTME: Validates subject union semantics and order-preserving filtering.
package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func totalsTable() *Table {
	return NewTable("Totals",
		[]string{"UserName", "RecallNo", "KCAL"},
		[][]string{
			{"u1", "1", "2000"},
			{"u1", "2", "1800"},
			{"u2", "1", "2200"},
		})
}

func TestSubjectsUnionAcrossTables(t *testing.T) {
	// u3 appears only in the supplements table; the index must still see it.
	ins := NewTable("INS",
		[]string{"UserName", "RecallNo", "Suppl_Description"},
		[][]string{{"u3", "1", "Vitamin D"}})

	ds := New(map[string]*Table{"Totals": totalsTable(), "INS": ins})

	want := []string{"u1", "u2", "u3"}
	if got := ds.Subjects(); !reflect.DeepEqual(got, want) {
		t.Errorf("Subjects() = %v, want %v", got, want)
	}
}

func TestSubjectsIgnoresTablesWithoutUserName(t *testing.T) {
	meta := NewTable("Meta", []string{"Key", "Value"}, [][]string{{"a", "b"}})
	ds := New(map[string]*Table{"Meta": meta})
	if got := ds.Subjects(); len(got) != 0 {
		t.Errorf("expected no subjects, got %v", got)
	}
}

func TestFilterNilAllowlistReturnsSameTable(t *testing.T) {
	tab := totalsTable()
	if got := Filter(tab, nil); got != tab {
		t.Error("nil allowlist should return the input table unchanged")
	}
	if got := Filter(tab, []string{}); got != tab {
		t.Error("empty allowlist should return the input table unchanged")
	}
}

func TestFilterRestrictsAndPreservesOrder(t *testing.T) {
	tab := totalsTable()
	got := Filter(tab, []string{"u1"})

	if got == tab {
		t.Fatal("filter should return a new table")
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if r1, _ := got.Cell(0, "RecallNo"); r1 != "1" {
		t.Errorf("row order not preserved: first RecallNo = %q", r1)
	}
	if r2, _ := got.Cell(1, "RecallNo"); r2 != "2" {
		t.Errorf("row order not preserved: second RecallNo = %q", r2)
	}
	// Input untouched.
	if tab.Len() != 3 {
		t.Errorf("input table mutated: %d rows", tab.Len())
	}
}

func TestFilterUnknownSubjectMatchesNothing(t *testing.T) {
	got := Filter(totalsTable(), []string{"u9"})
	if got.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", got.Len())
	}
}

func TestTableFloat(t *testing.T) {
	tab := NewTable("Totals",
		[]string{"UserName", "KCAL", "PROT"},
		[][]string{{"u1", "2000", "abc"}, {"u1", "", "1"}})

	v, err := tab.Float(0, "KCAL")
	if err != nil || v != 2000 {
		t.Errorf("Float(0, KCAL) = %v, %v", v, err)
	}

	// Blank cells read as zero.
	v, err = tab.Float(1, "KCAL")
	if err != nil || v != 0 {
		t.Errorf("Float on blank cell = %v, %v", v, err)
	}

	// Non-numeric values surface a FieldError naming the field.
	_, err = tab.Float(0, "PROT")
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Column != "PROT" || fe.Row != 0 || fe.Table != "Totals" {
		t.Errorf("FieldError not tagged correctly: %+v", fe)
	}

	// Missing columns too.
	_, err = tab.Float(0, "NOPE")
	if !errors.As(err, &fe) || fe.Column != "NOPE" {
		t.Errorf("expected missing-column FieldError, got %v", err)
	}
}

func TestFieldErrorMessages(t *testing.T) {
	tab := totalsTable()

	// Row-scoped errors name the row.
	_, err := tab.Float(1, "NOPE")
	if got := err.Error(); !strings.Contains(got, "row 1") || !strings.Contains(got, "NOPE") {
		t.Errorf("Float error missing row/column: %q", got)
	}

	// Schema-level errors from Require have no row to report.
	err = tab.Require("F_TOTAL")
	if got := err.Error(); strings.Contains(got, "row") {
		t.Errorf("Require error should not mention a row: %q", got)
	}
}

func TestTableRequire(t *testing.T) {
	tab := totalsTable()
	if err := tab.Require("UserName", "KCAL"); err != nil {
		t.Errorf("Require on present columns: %v", err)
	}
	err := tab.Require("UserName", "F_TOTAL")
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Column != "F_TOTAL" {
		t.Errorf("expected FieldError for F_TOTAL, got %v", err)
	}
}
