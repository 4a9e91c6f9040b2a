// ABOUTME: Meal occasion enumeration for ASA24 item records.
// ABOUTME: Maps occasion codes 1-8 to meal names, anything else to Unknown.
package models

import "strconv"

// MealOccasion is an ASA24 meal occasion code (1-8).
type MealOccasion int

const (
	MealBreakfast MealOccasion = iota + 1
	MealMorningSnack
	MealLunch
	MealAfternoonSnack
	MealDinner
	MealEveningSnack
	MealLateEveningSnack
	MealOtherTime
)

// AllMealOccasions lists the valid occasion codes in chronological order.
var AllMealOccasions = []MealOccasion{
	MealBreakfast, MealMorningSnack, MealLunch, MealAfternoonSnack,
	MealDinner, MealEveningSnack, MealLateEveningSnack, MealOtherTime,
}

var mealNames = map[MealOccasion]string{
	MealBreakfast:        "Breakfast",
	MealMorningSnack:     "Morning Snack",
	MealLunch:            "Lunch",
	MealAfternoonSnack:   "Afternoon Snack",
	MealDinner:           "Dinner",
	MealEveningSnack:     "Evening Snack",
	MealLateEveningSnack: "Late Evening Snack",
	MealOtherTime:        "Other Time",
}

// Label returns the meal name for the occasion. Codes outside 1-8 get
// "Unknown" rather than an error; source data occasionally carries them.
func (m MealOccasion) Label() string {
	if name, ok := mealNames[m]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the occasion code is in the 1-8 range.
func (m MealOccasion) Valid() bool {
	_, ok := mealNames[m]
	return ok
}

// ParseMealOccasion converts a raw occasion cell to a MealOccasion.
// Non-integer values map to 0, which labels as "Unknown".
func ParseMealOccasion(s string) MealOccasion {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return MealOccasion(n)
}

// MealLabel is a convenience for labeling a raw occasion cell directly.
func MealLabel(code string) string {
	return ParseMealOccasion(code).Label()
}
