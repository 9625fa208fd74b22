package inventory

import (
	"errors"
	"time"
)

// Ledger actions.
const (
	ActionAdd    = "ADD"
	ActionRemove = "REMOVE"
)

var (
	// ErrItemNotFound means an update referenced an unknown ingredient.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrInsufficientStock means an update would drive a quantity below zero.
	ErrInsufficientStock = errors.New("insufficient inventory")
)

// InventoryItem is one restaurant's stock record for one ingredient.
// Quantity is mutated only through the ledger and never goes negative.
type InventoryItem struct {
	RestaurantID    string    `json:"restaurant_id"`
	IngredientID    string    `json:"ingredient_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	MinQuantity     float64   `json:"min_quantity"`
	MaxQuantity     float64   `json:"max_quantity"`
	Cost            float64   `json:"cost"`
	Supplier        string    `json:"supplier"`
	LastRestocked   time.Time `json:"last_restocked"`
	NextRestockDate time.Time `json:"next_restock_date"`
	ShelfLife       int       `json:"shelf_life"`
}

// Update is one entry of a batch ledger apply.
type Update struct {
	Quantity float64 `json:"quantity"`
	Action   string  `json:"action"`
}
