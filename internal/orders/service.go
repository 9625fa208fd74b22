package orders

import (
	"context"
	"errors"
	"time"

	"rasoi/internal/inventory"
)

// StockConsumer is the slice of the inventory ledger order placement
// depends on.
type StockConsumer interface {
	Apply(ctx context.Context, restaurantID string, updates map[string]inventory.Update) error
}

type Service struct {
	repo  Repository
	stock StockConsumer
}

func NewService(repo Repository, stock StockConsumer) *Service {
	return &Service{repo: repo, stock: stock}
}

// --------------------------------------------------
// Place order
// --------------------------------------------------
// Place consumes the restaurant's stock through the ledger before the
// order is persisted. Any ledger failure rejects the whole order; stock
// already consumed by sibling entries stays consumed (the ledger batch
// is not transactional).
func (s *Service) Place(
	ctx context.Context,
	userID, restaurantID string,
	items []OrderItem,
) (*Order, error) {

	if userID == "" || restaurantID == "" {
		return nil, errors.New("missing user or restaurant id")
	}
	if len(items) == 0 {
		return nil, errors.New("order has no items")
	}

	updates := make(map[string]inventory.Update, len(items))
	total := 0.0
	for _, item := range items {
		if item.IngredientID == "" {
			return nil, errors.New("order item missing ingredient id")
		}
		if item.Quantity <= 0 {
			return nil, errors.New("order item quantity must be positive")
		}
		existing := updates[item.IngredientID]
		existing.Quantity += item.Quantity
		existing.Action = inventory.ActionRemove
		updates[item.IngredientID] = existing

		total += item.Price * item.Quantity
	}

	if err := s.stock.Apply(ctx, restaurantID, updates); err != nil {
		return nil, err
	}

	order := &Order{
		RestaurantID: restaurantID,
		UserID:       userID,
		Items:        items,
		Total:        total,
		Status:       StatusPlaced,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// --------------------------------------------------
// Restaurant order history
// --------------------------------------------------
func (s *Service) History(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) ([]*Order, error) {
	return s.repo.ListBetween(ctx, restaurantID, start, end)
}
