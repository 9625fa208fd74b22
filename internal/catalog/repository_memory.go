package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	meals map[string]*Meal
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		meals: make(map[string]*Meal),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, meal *Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	r.meals[meal.ID] = meal
	r.order = append(r.order, meal.ID)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.meals[id]
	if !ok {
		return nil, errors.New("meal not found")
	}
	return meal, nil
}

func (r *InMemoryRepository) ListByAnyTag(ctx context.Context, tags []string) ([]*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meals []*Meal
	for _, id := range r.order {
		meal := r.meals[id]
		if len(tags) == 0 {
			meals = append(meals, meal)
			continue
		}
		for _, tag := range tags {
			if meal.HasTag(tag) {
				meals = append(meals, meal)
				break
			}
		}
	}
	return meals, nil
}

func (r *InMemoryRepository) SetImageURL(ctx context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meal, ok := r.meals[id]
	if !ok {
		return errors.New("meal not found")
	}
	meal.ImageURL = url
	return nil
}
