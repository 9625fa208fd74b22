package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service records restock notifications. It satisfies the inventory
// ledger's Notifier interface.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NotifyLowStock creates exactly one PENDING record per call.
func (s *Service) NotifyLowStock(ctx context.Context, restaurantID, ingredientID string) error {
	return s.repo.Append(ctx, &RestockNotification{
		ID:           uuid.New().String(),
		Type:         TypeInventoryLow,
		RestaurantID: restaurantID,
		IngredientID: ingredientID,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *Service) ListPending(ctx context.Context, restaurantID string) ([]*RestockNotification, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID, StatusPending)
}
