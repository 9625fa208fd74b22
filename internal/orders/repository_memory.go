package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	list []*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.list = append(r.list, order)
	return nil
}

func (r *InMemoryRepository) ListBetween(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) ([]*Order, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Order
	for _, order := range r.list {
		if order.RestaurantID != restaurantID {
			continue
		}
		// inclusive on both bounds
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}
