package inventory

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository mirrors the Postgres guarded update: the check and
// the write happen under one lock, never as a separate read then write.
type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]*InventoryItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*InventoryItem),
	}
}

func itemKey(restaurantID, ingredientID string) string {
	return restaurantID + "/" + ingredientID
}

func (r *InMemoryRepository) ApplyDelta(
	ctx context.Context,
	restaurantID, ingredientID string,
	delta float64,
) (*InventoryItem, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemKey(restaurantID, ingredientID)]
	if !ok {
		return nil, ErrItemNotFound
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		return nil, ErrInsufficientStock
	}

	item.Quantity = newQuantity
	item.LastRestocked = time.Now().UTC()

	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, item *InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	r.items[itemKey(item.RestaurantID, item.IngredientID)] = &copied
	return nil
}

func (r *InMemoryRepository) GetItem(
	ctx context.Context,
	restaurantID, ingredientID string,
) (*InventoryItem, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemKey(restaurantID, ingredientID)]
	if !ok {
		return nil, ErrItemNotFound
	}

	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*InventoryItem, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var items []*InventoryItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			copied := *item
			items = append(items, &copied)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].IngredientID < items[j].IngredientID
	})
	return items, nil
}
