package auth

// Roles recognized across the marketplace.
const (
	RoleCustomer        = "CUSTOMER"
	RoleRestaurantAgent = "RESTAURANT_AGENT"
	RoleAdmin           = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID           string
	Name         string
	Email        string
	Password     string
	Role         string
	RestaurantID string
}
