package orders

import (
	"context"
	"time"

	"rasoi/internal/core"
)

// UsageReader adapts the order repository to the narrow view the
// analytics engine reads.
type UsageReader struct {
	repo Repository
}

func NewUsageReader(repo Repository) *UsageReader {
	return &UsageReader{repo: repo}
}

func (r *UsageReader) ListBetween(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) ([]core.OrderRecord, error) {

	list, err := r.repo.ListBetween(ctx, restaurantID, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]core.OrderRecord, 0, len(list))
	for _, order := range list {
		record := core.OrderRecord{CreatedAt: order.CreatedAt}
		for _, item := range order.Items {
			record.Lines = append(record.Lines, core.OrderLine{
				IngredientID: item.IngredientID,
				Quantity:     item.Quantity,
			})
		}
		records = append(records, record)
	}
	return records, nil
}
