// ABOUTME: Tests for the summary projectors.
// ABOUTME: Covers relabeling, filtering, meal aggregation, and absence policy.
package report

import (
	"errors"
	"testing"

	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

func testTotalsColumns(extended bool) []string {
	cols := []string{"UserName", "RecallNo", "IntakeStartDateTime"}
	for _, c := range models.KeyNutrients {
		cols = append(cols, c.Code)
	}
	for _, c := range models.FoodGroups {
		cols = append(cols, c.Code)
	}
	if extended {
		for _, c := range models.ExtendedNutrients {
			cols = append(cols, c.Code)
		}
	}
	return cols
}

func testTotalsRow(user, recall string) []string {
	row := []string{user, recall, "2024-01-15 08:30"}
	for range models.KeyNutrients {
		row = append(row, "1.0")
	}
	for range models.FoodGroups {
		row = append(row, "0.5")
	}
	return row
}

func totalsDataset(extended bool, rows ...[]string) *dataset.Dataset {
	return dataset.New(map[string]*dataset.Table{
		"Totals": dataset.NewTable("Totals", testTotalsColumns(extended), rows),
	})
}

func itemsDataset(rows ...[]string) *dataset.Dataset {
	cols := []string{"UserName", "RecallNo", "Occ_Name", "Food_Description", "FoodAmt", "KCAL", "PROT", "TFAT", "CARB"}
	return dataset.New(map[string]*dataset.Table{
		"Items": dataset.NewTable("Items", cols, rows),
	})
}

func TestNutrientSummaryRelabels(t *testing.T) {
	ds := totalsDataset(false, testTotalsRow("u1", "1"), testTotalsRow("u2", "1"))

	r, err := NutrientSummary(ds, nil)
	if err != nil {
		t.Fatalf("NutrientSummary failed: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("rows = %d, want 2", r.Len())
	}
	if r.Cell(0, "Energy (kcal)") != "1.0" {
		t.Errorf("Energy (kcal) = %q, want 1.0", r.Cell(0, "Energy (kcal)"))
	}
	if r.Cell(0, "Visit") != "Visit 1" {
		t.Errorf("Visit = %q", r.Cell(0, "Visit"))
	}

	// Every relabeled column reverses to its source code.
	for _, col := range r.Columns[3:] {
		if _, ok := models.Code(col); !ok {
			t.Errorf("column %q does not reverse to a source code", col)
		}
	}
}

func TestNutrientSummaryExtendedColumns(t *testing.T) {
	base, err := NutrientSummary(totalsDataset(false, testTotalsRow("u1", "1")), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range base.Columns {
		if col == "Omega-3 Fatty Acids (g)" {
			t.Error("extended column should be absent for older exports")
		}
	}

	extRow := testTotalsRow("u1", "1")
	for range models.ExtendedNutrients {
		extRow = append(extRow, "0.1")
	}
	ext, err := NutrientSummary(totalsDataset(true, extRow), nil)
	if err != nil {
		t.Fatal(err)
	}
	if ext.Cell(0, "Omega-3 Fatty Acids (g)") != "0.1" {
		t.Errorf("extended column missing: %v", ext.Columns)
	}
}

func TestNutrientSummaryMissingTable(t *testing.T) {
	ds := dataset.New(map[string]*dataset.Table{})
	r, err := NutrientSummary(ds, nil)
	if err != nil {
		t.Fatalf("expected empty report, got error: %v", err)
	}
	if !r.Empty() {
		t.Errorf("expected empty report, got %d rows", r.Len())
	}
}

func TestNutrientSummaryMissingRequiredColumn(t *testing.T) {
	ds := dataset.New(map[string]*dataset.Table{
		"Totals": dataset.NewTable("Totals", []string{"UserName", "RecallNo"}, [][]string{{"u1", "1"}}),
	})
	_, err := NutrientSummary(ds, nil)
	var fe *dataset.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
}

func TestNutrientSummaryFilter(t *testing.T) {
	ds := totalsDataset(false, testTotalsRow("u1", "1"), testTotalsRow("u1", "2"), testTotalsRow("u2", "1"))

	r, err := NutrientSummary(ds, []string{"u1"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Errorf("filtered rows = %d, want 2", r.Len())
	}
	for i := 0; i < r.Len(); i++ {
		if r.Cell(i, "UserName") != "u1" {
			t.Errorf("row %d subject = %q", i, r.Cell(i, "UserName"))
		}
	}

	none, err := NutrientSummary(ds, []string{"u9"})
	if err != nil {
		t.Fatal(err)
	}
	if !none.Empty() {
		t.Errorf("unknown subject should match zero rows, got %d", none.Len())
	}
}

func TestNutrientSummaryKeepsDuplicateKeys(t *testing.T) {
	// Two rows sharing (subject, recall) both appear; the projector does
	// not deduplicate.
	ds := totalsDataset(false, testTotalsRow("u1", "1"), testTotalsRow("u1", "1"))
	r, err := NutrientSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Errorf("duplicate keys collapsed: %d rows", r.Len())
	}
}

func TestFoodGroupSummary(t *testing.T) {
	ds := totalsDataset(false, testTotalsRow("u1", "3"))
	r, err := FoodGroupSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cell(0, "Total Fruits (cup eq)") != "0.5" {
		t.Errorf("Total Fruits = %q", r.Cell(0, "Total Fruits (cup eq)"))
	}
	if r.Cell(0, "Visit") != "Visit 3" {
		t.Errorf("Visit = %q", r.Cell(0, "Visit"))
	}
}

func TestMealSummaryAggregates(t *testing.T) {
	ds := itemsDataset(
		[]string{"u1", "1", "1", "Oatmeal", "1", "150", "5", "3", "27"},
		[]string{"u1", "1", "1", "Banana", "1", "105", "1.3", "0.4", "27"},
		[]string{"u1", "1", "3", "Sandwich", "1", "350", "20", "12", "40"},
	)

	r, err := MealSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("meal groups = %d, want 2", r.Len())
	}
	if r.Cell(0, "Meal") != "Breakfast" {
		t.Errorf("first meal = %q", r.Cell(0, "Meal"))
	}
	if r.Cell(0, "Number of Items") != "2" {
		t.Errorf("breakfast items = %q, want 2", r.Cell(0, "Number of Items"))
	}
	if r.Cell(0, "Calories") != "255.0" {
		t.Errorf("breakfast calories = %q, want 255.0", r.Cell(0, "Calories"))
	}
	if r.Cell(1, "Meal") != "Lunch" {
		t.Errorf("second meal = %q", r.Cell(1, "Meal"))
	}
}

func TestMealSummaryItemCountsMatchSource(t *testing.T) {
	ds := itemsDataset(
		[]string{"u1", "1", "1", "a", "1", "100", "1", "1", "1"},
		[]string{"u1", "1", "3", "b", "1", "100", "1", "1", "1"},
		[]string{"u1", "1", "5", "c", "1", "100", "1", "1", "1"},
		[]string{"u1", "2", "5", "d", "1", "100", "1", "1", "1"},
		[]string{"u2", "1", "1", "e", "1", "100", "1", "1", "1"},
	)
	r, err := MealSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	for i := 0; i < r.Len(); i++ {
		key := r.Cell(i, "UserName") + "|" + r.Cell(i, "Visit")
		n := 0
		for _, c := range r.Cell(i, "Number of Items") {
			n = n*10 + int(c-'0')
		}
		counts[key] += n
	}
	want := map[string]int{"u1|Visit 1": 3, "u1|Visit 2": 1, "u2|Visit 1": 1}
	for key, n := range want {
		if counts[key] != n {
			t.Errorf("item count for %s = %d, want %d", key, counts[key], n)
		}
	}
}

func TestMealSummaryRounding(t *testing.T) {
	ds := itemsDataset(
		[]string{"u1", "1", "1", "a", "1", "100.04", "0.05", "0", "0"},
		[]string{"u1", "1", "1", "b", "1", "0.01", "0.1", "0", "0"},
	)
	r, err := MealSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 100.05 rounds half away from zero to 100.1; 0.15 to 0.2.
	if got := r.Cell(0, "Calories"); got != "100.1" {
		t.Errorf("Calories = %q, want 100.1", got)
	}
	if got := r.Cell(0, "Protein (g)"); got != "0.2" {
		t.Errorf("Protein = %q, want 0.2", got)
	}
}

func TestMealSummaryUnknownOccasion(t *testing.T) {
	ds := itemsDataset([]string{"u1", "1", "9", "mystery", "1", "50", "1", "1", "1"})
	r, err := MealSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cell(0, "Meal") != "Unknown" {
		t.Errorf("out-of-range occasion labeled %q, want Unknown", r.Cell(0, "Meal"))
	}
}

func TestMealSummaryMissingTable(t *testing.T) {
	r, err := MealSummary(dataset.New(map[string]*dataset.Table{}), nil)
	if err != nil || !r.Empty() {
		t.Errorf("expected empty report, got %d rows, err %v", r.Len(), err)
	}
}

func TestMealSummaryNonNumericMacro(t *testing.T) {
	ds := itemsDataset([]string{"u1", "1", "1", "a", "1", "lots", "1", "1", "1"})
	_, err := MealSummary(ds, nil)
	var fe *dataset.FieldError
	if !errors.As(err, &fe) || fe.Column != "KCAL" {
		t.Errorf("expected FieldError on KCAL, got %v", err)
	}
}

func TestFoodItems(t *testing.T) {
	ds := itemsDataset(
		[]string{"u1", "1", "1", "Oatmeal", "1.5", "150", "5", "3", "27"},
		[]string{"u2", "2", "5", "Salmon", "1", "280", "25", "18", "0"},
	)
	r, err := FoodItems(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("rows = %d, want 2", r.Len())
	}
	if r.Cell(0, "Food_Description") != "Oatmeal" {
		t.Errorf("description = %q", r.Cell(0, "Food_Description"))
	}
	if r.Cell(0, "Meal") != "Breakfast" || r.Cell(0, "Visit") != "Visit 1" {
		t.Errorf("labels = %q/%q", r.Cell(0, "Meal"), r.Cell(0, "Visit"))
	}
	if r.Cell(1, "Meal") != "Dinner" || r.Cell(1, "Visit") != "Visit 2" {
		t.Errorf("labels = %q/%q", r.Cell(1, "Meal"), r.Cell(1, "Visit"))
	}

	filtered, err := FoodItems(ds, []string{"u2"})
	if err != nil {
		t.Fatal(err)
	}
	if filtered.Len() != 1 || filtered.Cell(0, "UserName") != "u2" {
		t.Errorf("filter failed: %v", filtered.Rows)
	}
}

func TestSupplementSummary(t *testing.T) {
	cols := []string{"UserName", "RecallNo", "IntakeStartDateTime", "Suppl_Description", "SupplAmount", "SupplUnit"}
	ds := dataset.New(map[string]*dataset.Table{
		"INS": dataset.NewTable("INS", cols, [][]string{
			{"u1", "1", "2024-01-15 08:00", "Vitamin D", "1000", "IU"},
			{"u2", "1", "2024-01-15 09:00", "Iron", "65", "mg"},
		}),
	})

	r, err := SupplementSummary(ds, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("rows = %d, want 2", r.Len())
	}
	if r.Cell(0, "Suppl_Description") != "Vitamin D" || r.Cell(0, "Visit") != "Visit 1" {
		t.Errorf("row = %v", r.Rows[0])
	}

	filtered, err := SupplementSummary(ds, []string{"u1"})
	if err != nil {
		t.Fatal(err)
	}
	if filtered.Len() != 1 {
		t.Errorf("filtered rows = %d, want 1", filtered.Len())
	}

	empty, err := SupplementSummary(dataset.New(map[string]*dataset.Table{}), nil)
	if err != nil || !empty.Empty() {
		t.Errorf("expected empty report for missing INS table")
	}
}
