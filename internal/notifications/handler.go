package notifications

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Pending restock notifications for a restaurant
// --------------------------------------------------
func (h *Handler) ListPending(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")
	if restaurantID == "" {
		restaurantID = c.Query("restaurant_id")
	}
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	list, err := h.service.ListPending(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": list})
}
