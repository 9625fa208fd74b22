package mealplan

import "rasoi/internal/catalog"

// FilterByDiet returns the meals whose ingredients touch neither the
// preference's restrictions nor its allergies. An empty result is valid;
// the caller decides whether that is fatal.
func FilterByDiet(meals []*catalog.Meal, pref DietPreference) []*catalog.Meal {
	excluded := make(map[string]struct{}, len(pref.Restrictions)+len(pref.Allergies))
	for _, id := range pref.Restrictions {
		excluded[id] = struct{}{}
	}
	for _, id := range pref.Allergies {
		excluded[id] = struct{}{}
	}

	var allowed []*catalog.Meal
	for _, meal := range meals {
		ok := true
		for _, ing := range meal.Ingredients {
			if _, hit := excluded[ing.IngredientID]; hit {
				ok = false
				break
			}
		}
		if ok {
			allowed = append(allowed, meal)
		}
	}
	return allowed
}
