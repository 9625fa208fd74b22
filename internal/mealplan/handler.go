package mealplan

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

type generateRequest struct {
	DietPreference DietPreference `json:"diet_preference"`
	Duration       int            `json:"duration"`
}

// --------------------------------------------------
// Generate a plan for the authenticated user
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Duration < MinPlanDuration || req.Duration > MaxPlanDuration {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be between 1 and 30 days"})
		return
	}

	plan, err := h.service.GeneratePlan(
		c.Request.Context(),
		userID,
		req.DietPreference,
		req.Duration,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// --------------------------------------------------
// List the user's previous plans
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	plans, err := h.service.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
