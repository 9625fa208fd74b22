package inventory

import (
	"context"
	"sort"
	"time"

	"rasoi/internal/core"
)

// Items whose next restock date falls within this many calendar days
// are reported as expiring soon.
const expiringWindowDays = 7

// UsageTrend is the aggregated consumption for one ingredient over the
// queried window.
type UsageTrend struct {
	DailyUsage float64 `json:"daily_usage"`
	PeakHours  []int   `json:"peak_hours"`
}

// AnalyticsReport is derived per query and never persisted.
type AnalyticsReport struct {
	LowStockItems []*InventoryItem       `json:"low_stock_items"`
	ExpiringSoon  []*InventoryItem       `json:"expiring_soon"`
	UsageTrends   map[string]*UsageTrend `json:"usage_trends"`
}

type Analytics struct {
	repo   Repository
	orders core.OrdersReader

	// injectable for deterministic expiry checks in tests
	now func() time.Time
}

func NewAnalytics(repo Repository, orders core.OrdersReader) *Analytics {
	return &Analytics{
		repo:   repo,
		orders: orders,
		now:    time.Now,
	}
}

// Analyze builds the low-stock and expiring-soon snapshots from current
// inventory, and usage trends from orders created inside [start, end],
// both bounds inclusive.
func (a *Analytics) Analyze(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) (*AnalyticsReport, error) {

	items, err := a.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	report := &AnalyticsReport{
		UsageTrends: make(map[string]*UsageTrend),
	}

	now := a.now().UTC()
	for _, item := range items {
		if item.Quantity <= item.MinQuantity {
			report.LowStockItems = append(report.LowStockItems, item)
		}
		if item.NextRestockDate.IsZero() {
			continue
		}
		// fractional days truncate toward zero; past-due dates fall
		// inside the window by the same arithmetic
		days := int(item.NextRestockDate.Sub(now).Hours() / 24)
		if days <= expiringWindowDays {
			report.ExpiringSoon = append(report.ExpiringSoon, item)
		}
	}

	records, err := a.orders.ListBetween(ctx, restaurantID, start, end)
	if err != nil {
		return nil, err
	}

	peakHours := make(map[string]map[int]struct{})
	for _, record := range records {
		hour := record.CreatedAt.UTC().Hour()
		for _, line := range record.Lines {
			trend, ok := report.UsageTrends[line.IngredientID]
			if !ok {
				trend = &UsageTrend{}
				report.UsageTrends[line.IngredientID] = trend
				peakHours[line.IngredientID] = make(map[int]struct{})
			}
			trend.DailyUsage += line.Quantity
			peakHours[line.IngredientID][hour] = struct{}{}
		}
	}

	for ingredientID, hours := range peakHours {
		trend := report.UsageTrends[ingredientID]
		for hour := range hours {
			trend.PeakHours = append(trend.PeakHours, hour)
		}
		sort.Ints(trend.PeakHours)
	}

	return report, nil
}
