// ABOUTME: Tabular rendering of HEI scores as a Report.
// ABOUTME: One row per scored record, components in fixed order plus the total.
package hei

import (
	"strconv"

	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/report"
)

// ReportColumns is the fixed column order for HEI score tables.
var ReportColumns = []string{
	models.ColUserName, "Visit",
	"Total Fruits", "Whole Fruits", "Total Vegetables", "Greens & Beans",
	"Whole Grains", "Dairy", "Total Protein Foods", "Seafood & Plant Proteins",
	"Fatty Acids", "Refined Grains", "Sodium", "Added Sugars", "Saturated Fat",
	"Total HEI Score",
}

// ToReport converts scores to the common report shape used by the CLI,
// export, and MCP layers.
func ToReport(scores []Score) *report.Report {
	out := &report.Report{Title: "HEI-2015 Scores", Columns: ReportColumns}
	for _, s := range scores {
		c := s.Components
		out.Rows = append(out.Rows, []string{
			s.Subject, s.Visit,
			points(c.TotalFruits), points(c.WholeFruits),
			points(c.TotalVegetables), points(c.GreensAndBeans),
			points(c.WholeGrains), points(c.Dairy),
			points(c.TotalProteinFoods), points(c.SeafoodPlantProteins),
			points(c.FattyAcids), points(c.RefinedGrains),
			points(c.Sodium), points(c.AddedSugars), points(c.SaturatedFat),
			points(s.Total),
		})
	}
	return out
}

func points(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
