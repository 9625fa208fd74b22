package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rasoi/internal/inventory"

	"github.com/gin-gonic/gin"
)

func setupHistoryRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for the auth middleware
	r.Use(func(c *gin.Context) {
		c.Set("restaurantID", "rest-1")
	})

	handler := NewHandler(NewService(repo, inventory.NewLedger(inventory.NewInMemoryRepository(), nil)))
	r.GET("/orders", handler.History)

	return r
}

func TestHistoryEndDateCoversWholeDay(t *testing.T) {
	repo := NewInMemoryRepository()

	// placed in the evening of the queried end date
	err := repo.Create(context.Background(), &Order{
		RestaurantID: "rest-1",
		UserID:       "user-1",
		Items:        []OrderItem{{IngredientID: "rice", Quantity: 1}},
		Status:       StatusPlaced,
		CreatedAt:    time.Date(2026, 3, 5, 18, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	r := setupHistoryRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/orders?start_date=2026-03-05&end_date=2026-03-05", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Orders []*Order `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Orders) != 1 {
		t.Fatalf("expected the evening order inside the window, got %d orders", len(resp.Orders))
	}
}

func TestHistoryRejectsBadDates(t *testing.T) {
	r := setupHistoryRouter(NewInMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/orders?end_date=05-03-2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
