package notifications

import "time"

const (
	TypeInventoryLow = "INVENTORY_LOW"
	StatusPending    = "PENDING"
)

// RestockNotification is created once per threshold breach. Its
// lifecycle past PENDING belongs to a downstream consumer.
type RestockNotification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	IngredientID string    `json:"ingredient_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
