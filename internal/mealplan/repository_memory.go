package mealplan

import (
	"context"
	"sync"
)

type InMemoryPlanRepository struct {
	mu    sync.Mutex
	plans map[string][]*MealPlan
}

func NewInMemoryPlanRepository() *InMemoryPlanRepository {
	return &InMemoryPlanRepository{
		plans: make(map[string][]*MealPlan),
	}
}

func (r *InMemoryPlanRepository) Save(ctx context.Context, plan *MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[plan.UserID] = append(r.plans[plan.UserID], plan)
	return nil
}

func (r *InMemoryPlanRepository) ListByUser(ctx context.Context, userID string) ([]*MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.plans[userID], nil
}
