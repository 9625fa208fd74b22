package inventory

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ledger    *Ledger
	repo      Repository
	analytics *Analytics
}

func NewHandler(ledger *Ledger, repo Repository, analytics *Analytics) *Handler {
	return &Handler{ledger: ledger, repo: repo, analytics: analytics}
}

// Agents act on the restaurant bound to their token; admins pass
// restaurant_id explicitly.
func resolveRestaurantID(c *gin.Context) string {
	if id := c.GetString("restaurantID"); id != "" {
		return id
	}
	return c.Query("restaurant_id")
}

type applyRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Updates      map[string]Update `json:"updates"`
}

// --------------------------------------------------
// Batch ledger apply
// --------------------------------------------------
func (h *Handler) ApplyUpdates(c *gin.Context) {
	var req applyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "updates are required"})
		return
	}

	restaurantID := resolveRestaurantID(c)
	if restaurantID == "" {
		restaurantID = req.RestaurantID
	}
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	if err := h.ledger.Apply(c.Request.Context(), restaurantID, req.Updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inventory updated"})
}

// --------------------------------------------------
// Upsert one stock record (provisioning)
// --------------------------------------------------
func (h *Handler) UpsertItem(c *gin.Context) {
	var item InventoryItem

	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if restaurantID := resolveRestaurantID(c); restaurantID != "" {
		item.RestaurantID = restaurantID
	}
	if item.RestaurantID == "" || item.IngredientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id and ingredient_id are required"})
		return
	}
	if item.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	if err := h.repo.Upsert(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// List restaurant stock
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID := resolveRestaurantID(c)
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	items, err := h.repo.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Usage analytics over a date window
// --------------------------------------------------
func (h *Handler) GetAnalytics(c *gin.Context) {
	restaurantID := resolveRestaurantID(c)
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	start, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date before start_date"})
		return
	}

	report, err := h.analytics.Analyze(c.Request.Context(), restaurantID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
