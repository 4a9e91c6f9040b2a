// ABOUTME: ASA24 column vocabulary and code-to-label mappings.
// ABOUTME: Defines nutrient and food group display labels plus visit derivation.
package models

import "strings"

// Source column names shared across ASA24 export categories.
const (
	ColUserName        = "UserName"
	ColRecallNo        = "RecallNo"
	ColIntakeStart     = "IntakeStartDateTime"
	ColOccasion        = "Occ_Name"
	ColFoodDescription = "Food_Description"
	ColFoodAmount      = "FoodAmt"
	ColSupplementDesc  = "Suppl_Description"
	ColSupplementAmt   = "SupplAmount"
	ColSupplementUnit  = "SupplUnit"
)

// Export categories, derived from the trailing filename segment.
const (
	TableTotals      = "Totals"
	TableItems       = "Items"
	TableSupplements = "INS"
)

// Column pairs an ASA24 column code with its human-readable display label.
type Column struct {
	Code  string
	Label string
}

// KeyNutrients lists the core daily-total nutrients in display order.
var KeyNutrients = []Column{
	{"KCAL", "Energy (kcal)"},
	{"PROT", "Protein (g)"},
	{"TFAT", "Total Fat (g)"},
	{"CARB", "Carbohydrate (g)"},
	{"FIBE", "Fiber (g)"},
	{"SUGR", "Sugar (g)"},
	{"CALC", "Calcium (mg)"},
	{"IRON", "Iron (mg)"},
	{"VC", "Vitamin C (mg)"},
	{"VITD", "Vitamin D (mcg)"},
	{"VARA", "Vitamin A (mcg)"},
	{"VB12", "Vitamin B12 (mcg)"},
	{"FOLA", "Folate (mcg)"},
	{"SODI", "Sodium (mg)"},
	{"POTA", "Potassium (mg)"},
}

// ExtendedNutrients are present only in newer exports. Projectors include
// them when the loaded Totals table carries the column.
var ExtendedNutrients = []Column{
	{"OMEGA3", "Omega-3 Fatty Acids (g)"},
	{"DHA", "DHA (g)"},
	{"EPA", "EPA (g)"},
	{"ALA", "ALA (g)"},
	{"CHOLINE", "Choline (mg)"},
	{"IODINE", "Iodine (mcg)"},
	{"ZINC", "Zinc (mg)"},
	{"SELENIUM", "Selenium (mcg)"},
	{"MAGNESIUM", "Magnesium (mg)"},
}

// FoodGroups lists the food pattern equivalents in display order.
var FoodGroups = []Column{
	{"F_TOTAL", "Total Fruits (cup eq)"},
	{"F_CITMLB", "Citrus/Melons/Berries (cup eq)"},
	{"F_OTHER", "Other Fruits (cup eq)"},
	{"V_TOTAL", "Total Vegetables (cup eq)"},
	{"V_DRKGR", "Dark Green Vegetables (cup eq)"},
	{"V_REDOR_TOTAL", "Red/Orange Vegetables (cup eq)"},
	{"G_TOTAL", "Total Grains (oz eq)"},
	{"G_WHOLE", "Whole Grains (oz eq)"},
	{"G_REFINED", "Refined Grains (oz eq)"},
	{"PF_TOTAL", "Total Protein Foods (oz eq)"},
	{"PF_MEAT", "Meat (oz eq)"},
	{"PF_POULT", "Poultry (oz eq)"},
	{"PF_SEAFD_HI", "Seafood (oz eq)"},
	{"PF_EGGS", "Eggs (oz eq)"},
	{"PF_NUTSDS", "Nuts/Seeds (oz eq)"},
	{"D_TOTAL", "Total Dairy (cup eq)"},
	{"D_MILK", "Milk (cup eq)"},
	{"D_CHEESE", "Cheese (cup eq)"},
	{"ADD_SUGARS", "Added Sugars (tsp eq)"},
	{"OILS", "Oils (g)"},
}

var (
	labelByCode = map[string]string{}
	codeByLabel = map[string]string{}
)

func init() {
	for _, set := range [][]Column{KeyNutrients, ExtendedNutrients, FoodGroups} {
		for _, c := range set {
			labelByCode[c.Code] = c.Label
			codeByLabel[c.Label] = c.Code
		}
	}
}

// Label returns the display label for a column code.
func Label(code string) (string, bool) {
	l, ok := labelByCode[code]
	return l, ok
}

// Code reverses Label, recovering the column code for a display label.
func Code(label string) (string, bool) {
	c, ok := codeByLabel[label]
	return c, ok
}

// VisitLabel derives the display label for a recall sequence number.
// The raw cell value is used as-is: "1" becomes "Visit 1".
func VisitLabel(recallNo string) string {
	return "Visit " + strings.TrimSpace(recallNo)
}
