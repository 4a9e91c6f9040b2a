// ABOUTME: Supplement intake projection over the INS table.
// ABOUTME: One row per supplement record with the visit label attached.
package report

import (
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

// SupplementSummary lists supplement intake records with visit labels.
// Column names stay raw; supplement exports have no relabeling table.
func SupplementSummary(ds *dataset.Dataset, subjects []string) (*Report, error) {
	out := &Report{
		Title: "Supplement Summary",
		Columns: []string{
			models.ColUserName, models.ColRecallNo, models.ColIntakeStart,
			models.ColSupplementDesc, models.ColSupplementAmt, models.ColSupplementUnit,
			"Visit",
		},
	}

	t, ok := ds.Table(models.TableSupplements)
	if !ok {
		return out, nil
	}
	if err := t.Require(out.Columns[:6]...); err != nil {
		return nil, err
	}

	t = dataset.Filter(t, subjects)
	for row := 0; row < t.Len(); row++ {
		cells := make([]string, 0, len(out.Columns))
		for _, col := range out.Columns[:6] {
			v, _ := t.Cell(row, col)
			cells = append(cells, v)
		}
		recall, _ := t.Cell(row, models.ColRecallNo)
		cells = append(cells, models.VisitLabel(recall))
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}
