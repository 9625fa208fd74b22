package inventory

import "context"

// Repository is the stock data-access contract.
//
// ApplyDelta is the single mutation path for quantities. It must be
// atomic per (restaurantID, ingredientID): concurrent callers may never
// interleave a read-then-write and lose an update or break the
// non-negativity invariant. It returns the item as persisted, or
// ErrItemNotFound / ErrInsufficientStock with the stored value unchanged.
type Repository interface {
	ApplyDelta(ctx context.Context, restaurantID, ingredientID string, delta float64) (*InventoryItem, error)
	Upsert(ctx context.Context, item *InventoryItem) error
	GetItem(ctx context.Context, restaurantID, ingredientID string) (*InventoryItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*InventoryItem, error)
}

// Notifier observes threshold breaches. Implemented by the
// notifications service; the ledger only depends on this interface.
type Notifier interface {
	NotifyLowStock(ctx context.Context, restaurantID, ingredientID string) error
}
