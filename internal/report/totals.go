// ABOUTME: Nutrient and food-group summary projections over the Totals table.
// ABOUTME: Selects fixed column sets, relabels them, and keys rows by subject and visit.
package report

import (
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

// NutrientSummary projects the daily nutrient totals: the 15 key nutrients,
// relabeled, keyed by (subject, visit). Extended nutrients (omega-3 fields
// and trace minerals) are included when the loaded export carries them.
// A missing Totals table yields an empty report.
func NutrientSummary(ds *dataset.Dataset, subjects []string) (*Report, error) {
	columns := append([]models.Column{}, models.KeyNutrients...)
	t, ok := ds.Table(models.TableTotals)
	if ok {
		for _, c := range models.ExtendedNutrients {
			if t.HasColumn(c.Code) {
				columns = append(columns, c)
			}
		}
	}
	return projectTotals(ds, subjects, "Nutrient Summary", columns)
}

// FoodGroupSummary projects the food pattern equivalents from the Totals
// table, relabeled with unit suffixes, keyed by (subject, visit).
func FoodGroupSummary(ds *dataset.Dataset, subjects []string) (*Report, error) {
	return projectTotals(ds, subjects, "Food Groups Summary", models.FoodGroups)
}

func projectTotals(ds *dataset.Dataset, subjects []string, title string, columns []models.Column) (*Report, error) {
	header := []string{models.ColUserName, "Visit", models.ColIntakeStart}
	for _, c := range columns {
		header = append(header, c.Label)
	}
	out := &Report{Title: title, Columns: header}

	t, ok := ds.Table(models.TableTotals)
	if !ok {
		return out, nil
	}

	required := []string{models.ColUserName, models.ColRecallNo, models.ColIntakeStart}
	for _, c := range columns {
		required = append(required, c.Code)
	}
	if err := t.Require(required...); err != nil {
		return nil, err
	}

	t = dataset.Filter(t, subjects)
	for row := 0; row < t.Len(); row++ {
		user, _ := t.Cell(row, models.ColUserName)
		recall, _ := t.Cell(row, models.ColRecallNo)
		start, _ := t.Cell(row, models.ColIntakeStart)
		cells := []string{user, models.VisitLabel(recall), start}
		for _, c := range columns {
			v, _ := t.Cell(row, c.Code)
			cells = append(cells, v)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}
