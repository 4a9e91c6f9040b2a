// ABOUTME: Tests for the CSV directory loader.
// ABOUTME: Validates category naming, file skipping, and empty directories.
package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCategorizesByTrailingSegment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "MOMMA_2024_Totals.csv", "UserName,RecallNo,KCAL\nu1,1,2000\n")
	writeFile(t, dir, "MOMMA_2024_Items.csv", "UserName,RecallNo,Occ_Name\nu1,1,1\nu2,1,5\n")
	writeFile(t, dir, "notes.txt", "not a csv")

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	totals, ok := ds.Table("Totals")
	if !ok {
		t.Fatal("Totals table not loaded")
	}
	if totals.Len() != 1 {
		t.Errorf("Totals rows = %d, want 1", totals.Len())
	}

	items, ok := ds.Table("Items")
	if !ok {
		t.Fatal("Items table not loaded")
	}
	if items.Len() != 2 {
		t.Errorf("Items rows = %d, want 2", items.Len())
	}

	want := []string{"u1", "u2"}
	got := ds.Subjects()
	if len(got) != len(want) || got[0] != "u1" || got[1] != "u2" {
		t.Errorf("Subjects() = %v, want %v", got, want)
	}
}

func TestLoadFilenameWithoutUnderscore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Totals.csv", "UserName,KCAL\nu1,2000\n")

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := ds.Table("Totals"); !ok {
		t.Error("expected whole stem as category when no underscore")
	}
}

func TestLoadSkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "study_Totals.csv", "UserName,KCAL\nu1,2000\n")
	writeFile(t, dir, "study_Items.csv", "UserName,\"unterminated\nu1")

	ds, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := ds.Table("Totals"); !ok {
		t.Error("good file should still load")
	}
	if _, ok := ds.Table("Items"); ok {
		t.Error("unparseable file should be skipped")
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	ds, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load on empty dir failed: %v", err)
	}
	if len(ds.Categories()) != 0 {
		t.Errorf("expected no tables, got %v", ds.Categories())
	}
	if len(ds.Subjects()) != 0 {
		t.Errorf("expected no subjects, got %v", ds.Subjects())
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
