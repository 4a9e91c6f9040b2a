// ABOUTME: Meal summary and detailed food item projections over the Items table.
// ABOUTME: Groups item rows by meal occasion and attaches visit and meal labels.
package report

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/dataset"
	"github.com/wangyunai/MOMMA-ASA24-22-Data-Analyzer/internal/models"
)

var mealMacros = []struct {
	code  string
	label string
}{
	{"KCAL", "Calories"},
	{"PROT", "Protein (g)"},
	{"TFAT", "Fat (g)"},
	{"CARB", "Carbs (g)"},
}

type mealKey struct {
	user     string
	recall   string
	occasion models.MealOccasion
}

type mealAgg struct {
	count int
	sums  [4]float64
}

// MealSummary groups Items rows by (subject, recall, meal occasion),
// counting rows and summing the four macro fields. Sums are rounded to one
// decimal, half away from zero. Rows are ordered by subject, recall number,
// then chronological meal occasion.
func MealSummary(ds *dataset.Dataset, subjects []string) (*Report, error) {
	out := &Report{
		Title:   "Meal Summary",
		Columns: []string{models.ColUserName, "Visit", "Meal", "Number of Items", "Calories", "Protein (g)", "Fat (g)", "Carbs (g)"},
	}

	t, ok := ds.Table(models.TableItems)
	if !ok {
		return out, nil
	}
	required := []string{models.ColUserName, models.ColRecallNo, models.ColOccasion}
	for _, m := range mealMacros {
		required = append(required, m.code)
	}
	if err := t.Require(required...); err != nil {
		return nil, err
	}

	t = dataset.Filter(t, subjects)
	groups := map[mealKey]*mealAgg{}
	var keys []mealKey
	for row := 0; row < t.Len(); row++ {
		user, _ := t.Cell(row, models.ColUserName)
		recall, _ := t.Cell(row, models.ColRecallNo)
		occRaw, _ := t.Cell(row, models.ColOccasion)
		key := mealKey{user: user, recall: strings.TrimSpace(recall), occasion: models.ParseMealOccasion(occRaw)}

		agg, seen := groups[key]
		if !seen {
			agg = &mealAgg{}
			groups[key] = agg
			keys = append(keys, key)
		}
		agg.count++
		for i, m := range mealMacros {
			v, err := t.Float(row, m.code)
			if err != nil {
				return nil, err
			}
			agg.sums[i] += v
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].user != keys[j].user {
			return keys[i].user < keys[j].user
		}
		if keys[i].recall != keys[j].recall {
			return recallLess(keys[i].recall, keys[j].recall)
		}
		return keys[i].occasion < keys[j].occasion
	})

	for _, key := range keys {
		agg := groups[key]
		cells := []string{
			key.user,
			models.VisitLabel(key.recall),
			key.occasion.Label(),
			strconv.Itoa(agg.count),
		}
		for _, sum := range agg.sums {
			cells = append(cells, formatRounded(sum))
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// FoodItems lists every item row with visit and meal labels attached, the
// columns narrowed to identity, description, amount, and the four macros.
// No aggregation: one output row per input row.
func FoodItems(ds *dataset.Dataset, subjects []string) (*Report, error) {
	out := &Report{
		Title: "Food Items",
		Columns: []string{
			models.ColUserName, models.ColRecallNo, models.ColOccasion,
			models.ColFoodDescription, models.ColFoodAmount,
			"KCAL", "PROT", "TFAT", "CARB", "Meal", "Visit",
		},
	}

	t, ok := ds.Table(models.TableItems)
	if !ok {
		return out, nil
	}
	if err := t.Require(models.ColUserName, models.ColRecallNo, models.ColOccasion,
		models.ColFoodDescription, models.ColFoodAmount, "KCAL", "PROT", "TFAT", "CARB"); err != nil {
		return nil, err
	}

	t = dataset.Filter(t, subjects)
	for row := 0; row < t.Len(); row++ {
		cells := make([]string, 0, len(out.Columns))
		for _, col := range out.Columns[:9] {
			v, _ := t.Cell(row, col)
			cells = append(cells, v)
		}
		occ, _ := t.Cell(row, models.ColOccasion)
		recall, _ := t.Cell(row, models.ColRecallNo)
		cells = append(cells, models.MealLabel(occ), models.VisitLabel(recall))
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// formatRounded rounds to one decimal, half away from zero.
func formatRounded(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// recallLess orders recall numbers numerically when both parse, falling
// back to string order for non-numeric sequence values.
func recallLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
