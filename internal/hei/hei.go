// ABOUTME: HEI-2015 diet-quality scoring engine over daily Totals records.
// ABOUTME: Computes 13 clamped component scores per row from energy-normalized densities.
package hei

import (
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

// Components holds the 13 HEI-2015 component scores. Adequacy components
// (fruits through fatty acids) credit higher intake density; moderation
// components (refined grains through saturated fat) credit lower.
type Components struct {
	TotalFruits          float64 `json:"total_fruits" yaml:"total_fruits"`
	WholeFruits          float64 `json:"whole_fruits" yaml:"whole_fruits"`
	TotalVegetables      float64 `json:"total_vegetables" yaml:"total_vegetables"`
	GreensAndBeans       float64 `json:"greens_and_beans" yaml:"greens_and_beans"`
	WholeGrains          float64 `json:"whole_grains" yaml:"whole_grains"`
	Dairy                float64 `json:"dairy" yaml:"dairy"`
	TotalProteinFoods    float64 `json:"total_protein_foods" yaml:"total_protein_foods"`
	SeafoodPlantProteins float64 `json:"seafood_plant_proteins" yaml:"seafood_plant_proteins"`
	FattyAcids           float64 `json:"fatty_acids" yaml:"fatty_acids"`
	RefinedGrains        float64 `json:"refined_grains" yaml:"refined_grains"`
	Sodium               float64 `json:"sodium" yaml:"sodium"`
	AddedSugars          float64 `json:"added_sugars" yaml:"added_sugars"`
	SaturatedFat         float64 `json:"saturated_fat" yaml:"saturated_fat"`
}

// Sum totals the component scores. Each component is clamped to its point
// range, so the sum lands in [0, 100] by construction.
func (c Components) Sum() float64 {
	return c.TotalFruits + c.WholeFruits + c.TotalVegetables + c.GreensAndBeans +
		c.WholeGrains + c.Dairy + c.TotalProteinFoods + c.SeafoodPlantProteins +
		c.FattyAcids + c.RefinedGrains + c.Sodium + c.AddedSugars + c.SaturatedFat
}

// Score is one scored Totals record, keyed by (subject, visit).
type Score struct {
	Subject    string     `json:"subject" yaml:"subject"`
	RecallNo   string     `json:"recall_no" yaml:"recall_no"`
	Visit      string     `json:"visit" yaml:"visit"`
	Components Components `json:"components" yaml:"components"`
	Total      float64    `json:"total" yaml:"total"`
}

// Columns every Totals table must carry before scoring starts. Optional
// columns (F_JUICE, V_LEGUMES, the fat fields) degrade via Capabilities.
var requiredColumns = []string{
	models.ColUserName, models.ColRecallNo,
	"KCAL", "F_TOTAL", "V_TOTAL", "V_DRKGR",
	"G_WHOLE", "G_REFINED", "D_TOTAL",
	"PF_TOTAL", "PF_SEAFD_HI", "PF_NUTSDS",
	"SODI", "ADD_SUGARS",
}

// Midpoint score awarded when a fat component has no usable source columns.
const defaultFatScore = 5.0

// Percent of energy assumed for saturated fat when no source column exists.
const defaultSatFatPercent = 12.0

// Scores computes HEI-2015 scores for every Totals row, optionally
// restricted to a subject allowlist. A missing Totals table yields an
// empty result; malformed rows (KCAL <= 0, non-numeric fields) are errors.
func Scores(ds *dataset.Dataset, subjects []string) ([]Score, error) {
	t, ok := ds.Table(models.TableTotals)
	if !ok {
		return nil, nil
	}
	if err := t.Require(requiredColumns...); err != nil {
		return nil, err
	}

	caps := DetectCapabilities(t)
	t = dataset.Filter(t, subjects)

	scores := make([]Score, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		s, err := scoreRow(t, row, caps)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

func scoreRow(t *dataset.Table, row int, caps Capabilities) (Score, error) {
	kcal, err := t.Float(row, "KCAL")
	if err != nil {
		return Score{}, err
	}
	if kcal <= 0 {
		return Score{}, &dataset.FieldError{
			Table: t.Name, Row: row, Column: "KCAL",
			Reason: "non-positive energy intake",
		}
	}
	energyFactor := 1000 / kcal

	var c Components

	// Adequacy components: density per 1000 kcal, linear credit up to the
	// target density, clamped at the component maximum.
	fTotal, err := t.Float(row, "F_TOTAL")
	if err != nil {
		return Score{}, err
	}
	c.TotalFruits = adequacy(fTotal*energyFactor, 0.8, 5)

	wholeFruit := fTotal
	if caps.HasFruitJuice {
		juice, err := t.Float(row, "F_JUICE")
		if err != nil {
			return Score{}, err
		}
		wholeFruit -= juice
	}
	c.WholeFruits = adequacy(wholeFruit*energyFactor, 0.4, 5)

	vTotal, err := t.Float(row, "V_TOTAL")
	if err != nil {
		return Score{}, err
	}
	c.TotalVegetables = adequacy(vTotal*energyFactor, 1.1, 5)

	greens, err := t.Float(row, "V_DRKGR")
	if err != nil {
		return Score{}, err
	}
	if caps.HasLegumes {
		legumes, err := t.Float(row, "V_LEGUMES")
		if err != nil {
			return Score{}, err
		}
		greens += legumes
	}
	c.GreensAndBeans = adequacy(greens*energyFactor, 0.2, 5)

	gWhole, err := t.Float(row, "G_WHOLE")
	if err != nil {
		return Score{}, err
	}
	c.WholeGrains = adequacy(gWhole*energyFactor, 1.5, 10)

	dTotal, err := t.Float(row, "D_TOTAL")
	if err != nil {
		return Score{}, err
	}
	c.Dairy = adequacy(dTotal*energyFactor, 1.3, 10)

	pfTotal, err := t.Float(row, "PF_TOTAL")
	if err != nil {
		return Score{}, err
	}
	c.TotalProteinFoods = adequacy(pfTotal*energyFactor, 2.5, 5)

	seafd, err := t.Float(row, "PF_SEAFD_HI")
	if err != nil {
		return Score{}, err
	}
	nuts, err := t.Float(row, "PF_NUTSDS")
	if err != nil {
		return Score{}, err
	}
	c.SeafoodPlantProteins = adequacy((seafd+nuts)*energyFactor, 0.8, 5)

	c.FattyAcids, err = fattyAcidScore(t, row, caps)
	if err != nil {
		return Score{}, err
	}

	// Moderation components: linear credit between the zero-credit and
	// full-credit thresholds, inverted.
	gRefined, err := t.Float(row, "G_REFINED")
	if err != nil {
		return Score{}, err
	}
	c.RefinedGrains = moderation(gRefined*energyFactor, 4.3, 1.8, 10)

	sodi, err := t.Float(row, "SODI")
	if err != nil {
		return Score{}, err
	}
	c.Sodium = moderation(sodi*energyFactor/1000, 2.0, 1.1, 10)

	addSug, err := t.Float(row, "ADD_SUGARS")
	if err != nil {
		return Score{}, err
	}
	c.AddedSugars = moderation(addSug*4*100/kcal, 26, 6.5, 10)

	c.SaturatedFat, err = saturatedFatScore(t, row, caps, kcal)
	if err != nil {
		return Score{}, err
	}

	user, _ := t.Cell(row, models.ColUserName)
	recall, _ := t.Cell(row, models.ColRecallNo)
	return Score{
		Subject:    user,
		RecallNo:   recall,
		Visit:      models.VisitLabel(recall),
		Components: c,
		Total:      c.Sum(),
	}, nil
}

func fattyAcidScore(t *dataset.Table, row int, caps Capabilities) (float64, error) {
	var unsat, sat float64
	switch caps.FattyAcids {
	case FattyAcidsStandard:
		mufa, err := t.Float(row, "MUFA")
		if err != nil {
			return 0, err
		}
		pufa, err := t.Float(row, "PUFA")
		if err != nil {
			return 0, err
		}
		sfa, err := t.Float(row, "SFA")
		if err != nil {
			return 0, err
		}
		unsat, sat = mufa+pufa, sfa
	case FattyAcidsDerived:
		for _, col := range unsaturatedFieldColumns {
			v, err := t.Float(row, col)
			if err != nil {
				return 0, err
			}
			unsat += v
		}
		var err error
		sat, err = sumPresent(t, row, saturatedFieldColumns)
		if err != nil {
			return 0, err
		}
	default:
		return defaultFatScore, nil
	}

	// A day with no saturated fat has no meaningful ratio: any unsaturated
	// intake earns full credit, none at all falls back to the midpoint.
	if sat <= 0 {
		if unsat > 0 {
			return 10, nil
		}
		return defaultFatScore, nil
	}
	ratio := unsat / sat
	return clamp((ratio-1.2)/(2.5-1.2)*10, 0, 10), nil
}

func saturatedFatScore(t *dataset.Table, row int, caps Capabilities, kcal float64) (float64, error) {
	var grams float64
	switch caps.SatFat {
	case SatFatStandard:
		v, err := t.Float(row, "SFA")
		if err != nil {
			return 0, err
		}
		grams = v
	case SatFatAliasedSFAT:
		v, err := t.Float(row, "SFAT")
		if err != nil {
			return 0, err
		}
		grams = v
	case SatFatDerivedFromFattyAcids:
		v, err := sumPresent(t, row, saturatedFieldColumns)
		if err != nil {
			return 0, err
		}
		grams = v
	default:
		return moderation(defaultSatFatPercent, 16, 8, 10), nil
	}

	pct := grams * 9 * 100 / kcal
	return moderation(pct, 16, 8, 10), nil
}

// sumPresent sums the columns that exist in the table, skipping absent
// ones. Used for the S040..S180 fatty-acid breakdown, which varies by
// export vintage.
func sumPresent(t *dataset.Table, row int, cols []string) (float64, error) {
	var total float64
	for _, col := range cols {
		if !t.HasColumn(col) {
			continue
		}
		v, err := t.Float(row, col)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func adequacy(density, target, points float64) float64 {
	return clamp(density/target*points, 0, points)
}

func moderation(value, zeroCredit, fullCredit, points float64) float64 {
	return clamp((zeroCredit-value)/(zeroCredit-fullCredit)*points, 0, points)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
