package notifications

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	list []*RestockNotification
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Append(ctx context.Context, n *RestockNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.list = append(r.list, n)
	return nil
}

func (r *InMemoryRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID, status string,
) ([]*RestockNotification, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*RestockNotification
	for _, n := range r.list {
		if n.RestaurantID != restaurantID {
			continue
		}
		if status != "" && n.Status != status {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
