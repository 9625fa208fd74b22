package mealplan

import "context"

// PlanRepository persists generated plans.
type PlanRepository interface {
	Save(ctx context.Context, plan *MealPlan) error
	ListByUser(ctx context.Context, userID string) ([]*MealPlan, error)
}
