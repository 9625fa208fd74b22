package orders

import (
	"context"
	"time"
)

// Repository is the order data-access contract.
// ListBetween treats both bounds as inclusive.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	ListBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]*Order, error)
}
