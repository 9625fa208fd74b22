package notifications

import "context"

// Repository is a write-mostly sink plus a listing for agents.
type Repository interface {
	Append(ctx context.Context, n *RestockNotification) error
	ListByRestaurant(ctx context.Context, restaurantID, status string) ([]*RestockNotification, error)
}
