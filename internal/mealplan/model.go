package mealplan

import (
	"errors"
	"time"

	"rasoi/internal/catalog"
)

// Meal slots used to tag and select catalog meals.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

// Every generated day carries 3 primary slots plus this many snacks.
const snacksPerDay = 2

// Diet types accepted in a preference.
const (
	DietVegetarian = "VEGETARIAN"
	DietVegan      = "VEGAN"
	DietKeto       = "KETO"
	DietPaleo      = "PALEO"
	DietGlutenFree = "GLUTEN_FREE"
	DietDairyFree  = "DAIRY_FREE"
	DietCustom     = "CUSTOM"
)

// DietPreference is the immutable set of constraints shaping a plan.
type DietPreference struct {
	Type              string   `json:"type"`
	Restrictions      []string `json:"restrictions"`
	Allergies         []string `json:"allergies"`
	PreferredCuisines []string `json:"preferred_cuisines"`
	CalorieTarget     float64  `json:"calorie_target"`
	ProteinTarget     float64  `json:"protein_target"`
	CarbTarget        float64  `json:"carb_target"`
	FatTarget         float64  `json:"fat_target"`
}

func (p *DietPreference) Validate() error {
	switch p.Type {
	case DietVegetarian, DietVegan, DietKeto, DietPaleo,
		DietGlutenFree, DietDairyFree, DietCustom:
	default:
		return errors.New("unknown diet type")
	}

	if p.CalorieTarget < 0 || p.ProteinTarget < 0 ||
		p.CarbTarget < 0 || p.FatTarget < 0 {
		return errors.New("nutrition targets cannot be negative")
	}
	return nil
}

// DayMeals holds one day's assignments.
type DayMeals struct {
	Breakfast *catalog.Meal   `json:"breakfast"`
	Lunch     *catalog.Meal   `json:"lunch"`
	Dinner    *catalog.Meal   `json:"dinner"`
	Snacks    []*catalog.Meal `json:"snacks"`
}

// IngredientDemand is the aggregated need for one ingredient across a plan.
// Unit is taken from the first occurrence and assumed consistent.
type IngredientDemand struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

// MealPlan is the generated artifact. Never mutated after return.
type MealPlan struct {
	ID             string                      `json:"id"`
	UserID         string                      `json:"user_id"`
	StartDate      time.Time                   `json:"start_date"`
	EndDate        time.Time                   `json:"end_date"`
	DietPreference DietPreference              `json:"diet_preference"`
	Meals          map[string]*DayMeals        `json:"meals"`
	TotalCalories  float64                     `json:"total_calories"`
	TotalCost      float64                     `json:"total_cost"`
	Ingredients    map[string]IngredientDemand `json:"ingredients"`
}
