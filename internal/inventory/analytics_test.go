package inventory

import (
	"context"
	"testing"
	"time"

	"rasoi/internal/core"
)

type fakeOrdersReader struct {
	records []core.OrderRecord
}

func (f *fakeOrdersReader) ListBetween(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) ([]core.OrderRecord, error) {

	var out []core.OrderRecord
	for _, r := range f.records {
		if r.CreatedAt.Before(start) || r.CreatedAt.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func newTestAnalytics(t *testing.T, reader core.OrdersReader) (*Analytics, Repository) {
	t.Helper()
	repo := NewInMemoryRepository()
	analytics := NewAnalytics(repo, reader)
	analytics.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return analytics, repo
}

func TestAnalyzeLowStockSnapshot(t *testing.T) {
	analytics, repo := newTestAnalytics(t, &fakeOrdersReader{})
	seedItem(t, repo, "rice", 5, 10) // low
	seedItem(t, repo, "dal", 10, 10) // boundary counts as low
	seedItem(t, repo, "oil", 50, 10)

	report, err := analytics.Analyze(
		context.Background(), "rest-1",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(report.LowStockItems) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(report.LowStockItems))
	}
	for _, item := range report.LowStockItems {
		if item.IngredientID == "oil" {
			t.Fatal("oil reported low despite healthy stock")
		}
	}
}

func TestAnalyzeExpiringSoonWindow(t *testing.T) {
	analytics, repo := newTestAnalytics(t, &fakeOrdersReader{})
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	upsert := func(id string, nextRestock time.Time) {
		err := repo.Upsert(context.Background(), &InventoryItem{
			RestaurantID:    "rest-1",
			IngredientID:    id,
			Quantity:        100,
			MinQuantity:     1,
			NextRestockDate: nextRestock,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	upsert("soon", now.AddDate(0, 0, 3))
	upsert("edge", now.AddDate(0, 0, 7))
	upsert("far", now.AddDate(0, 0, 20))
	upsert("overdue", now.AddDate(0, 0, -2))

	report, err := analytics.Analyze(context.Background(), "rest-1", now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool)
	for _, item := range report.ExpiringSoon {
		got[item.IngredientID] = true
	}

	for _, want := range []string{"soon", "edge", "overdue"} {
		if !got[want] {
			t.Fatalf("%s missing from expiring-soon", want)
		}
	}
	if got["far"] {
		t.Fatal("far restock date reported as expiring soon")
	}
}

func TestAnalyzeUsageTrends(t *testing.T) {
	day := func(d, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 30, 0, 0, time.UTC)
	}

	reader := &fakeOrdersReader{records: []core.OrderRecord{
		{CreatedAt: day(5, 9), Lines: []core.OrderLine{
			{IngredientID: "rice", Quantity: 2},
			{IngredientID: "dal", Quantity: 1},
		}},
		{CreatedAt: day(6, 9), Lines: []core.OrderLine{
			{IngredientID: "rice", Quantity: 3},
		}},
		{CreatedAt: day(6, 19), Lines: []core.OrderLine{
			{IngredientID: "rice", Quantity: 1},
		}},
	}}

	analytics, _ := newTestAnalytics(t, reader)

	report, err := analytics.Analyze(
		context.Background(), "rest-1",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}

	rice := report.UsageTrends["rice"]
	if rice == nil || rice.DailyUsage != 6 {
		t.Fatalf("rice usage %+v, want 6", rice)
	}
	// hour 9 appears twice but the set holds it once
	if len(rice.PeakHours) != 2 || rice.PeakHours[0] != 9 || rice.PeakHours[1] != 19 {
		t.Fatalf("rice peak hours %v, want [9 19]", rice.PeakHours)
	}

	dal := report.UsageTrends["dal"]
	if dal == nil || dal.DailyUsage != 1 {
		t.Fatalf("dal usage %+v, want 1", dal)
	}
}

func TestAnalyzeWindowBoundsAreInclusive(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	reader := &fakeOrdersReader{records: []core.OrderRecord{
		{CreatedAt: start, Lines: []core.OrderLine{{IngredientID: "at-start", Quantity: 1}}},
		{CreatedAt: end, Lines: []core.OrderLine{{IngredientID: "at-end", Quantity: 1}}},
		{CreatedAt: start.Add(-time.Minute), Lines: []core.OrderLine{{IngredientID: "before", Quantity: 1}}},
		{CreatedAt: end.Add(time.Minute), Lines: []core.OrderLine{{IngredientID: "after", Quantity: 1}}},
	}}

	analytics, _ := newTestAnalytics(t, reader)

	report, err := analytics.Analyze(context.Background(), "rest-1", start, end)
	if err != nil {
		t.Fatal(err)
	}

	if report.UsageTrends["at-start"] == nil || report.UsageTrends["at-end"] == nil {
		t.Fatal("orders on the window bounds must be included")
	}
	if report.UsageTrends["before"] != nil || report.UsageTrends["after"] != nil {
		t.Fatal("orders outside the window must be excluded")
	}
}

func TestAnalyzeEmptyOrdersYieldsEmptyTrends(t *testing.T) {
	analytics, _ := newTestAnalytics(t, &fakeOrdersReader{})

	report, err := analytics.Analyze(
		context.Background(), "rest-1",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.UsageTrends) != 0 {
		t.Fatalf("expected empty trends, got %d", len(report.UsageTrends))
	}
}
