package orders

import "time"

const StatusPlaced = "PLACED"

// OrderItem is one line of a placed order. IngredientID ties the line
// back to the restaurant's stock records.
type OrderItem struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	UserID       string      `json:"user_id"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
