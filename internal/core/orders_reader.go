package core

import (
	"context"
	"time"
)

// OrderLine is one consumed ingredient on a historical order.
type OrderLine struct {
	IngredientID string
	Quantity     float64
}

// OrderRecord is the slice of an order that usage analytics needs.
type OrderRecord struct {
	CreatedAt time.Time
	Lines     []OrderLine
}

// OrdersReader exposes a restaurant's order history over a date window.
// Both bounds are inclusive.
type OrdersReader interface {
	ListBetween(
		ctx context.Context,
		restaurantID string,
		start, end time.Time,
	) ([]OrderRecord, error)
}
