package orders

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type placeRequest struct {
	RestaurantID string      `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
}

// --------------------------------------------------
// Customer places an order
// --------------------------------------------------
func (h *Handler) Place(c *gin.Context) {
	userID := c.GetString("userID")

	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.Place(c.Request.Context(), userID, req.RestaurantID, req.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// --------------------------------------------------
// Restaurant order history (?start_date&end_date, default last 30 days)
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")
	if restaurantID == "" {
		restaurantID = c.Query("restaurant_id")
	}
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		// an explicit end date covers that whole calendar day
		end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	list, err := h.service.History(c.Request.Context(), restaurantID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": list})
}
