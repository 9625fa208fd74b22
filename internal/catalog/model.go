package catalog

import "time"

// Difficulty levels for a catalog meal.
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// MealIngredient is one line of a meal's recipe.
type MealIngredient struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// Meal is the catalog entity. Read-only to the planning core.
type Meal struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Ingredients     []MealIngredient `json:"ingredients"`
	Calories        float64          `json:"calories"`
	Protein         float64          `json:"protein"`
	Carbs           float64          `json:"carbs"`
	Fat             float64          `json:"fat"`
	PreparationTime int              `json:"preparation_time"`
	CookingTime     int              `json:"cooking_time"`
	Difficulty      string           `json:"difficulty"`
	Tags            []string         `json:"tags"`
	ImageURL        string           `json:"image_url"`
	CreatedAt       time.Time        `json:"created_at"`
}

// HasTag reports whether the meal carries the given tag.
func (m *Meal) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
