package auth

import (
	"errors"
	"testing"
)

// failingUserRepository simulates a store that errors on the
// duplicate-email lookup.
type failingUserRepository struct {
	*InMemoryUserRepository
}

func (r *failingUserRepository) ExistsByEmail(email string) (bool, error) {
	return false, errors.New("connection reset")
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := service.Register("Test User", "c@example.com", "Password@123", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != RoleCustomer {
		t.Fatalf("role %s, want %s", user.Role, RoleCustomer)
	}
}

func TestRegisterAgentRequiresRestaurant(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Agent", "a@example.com", "Password@123", RoleRestaurantAgent, "")
	if err == nil {
		t.Fatal("agent without restaurant accepted")
	}

	user, err := service.Register("Agent", "a@example.com", "Password@123", RoleRestaurantAgent, "rest-1")
	if err != nil {
		t.Fatal(err)
	}
	if user.RestaurantID != "rest-1" {
		t.Fatalf("restaurant id %s, want rest-1", user.RestaurantID)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("X", "x@example.com", "Password@123", "SUPERUSER", ""); err == nil {
		t.Fatal("unknown role accepted")
	}
}

func TestRegisterFailsWhenEmailLookupErrors(t *testing.T) {
	repo := &failingUserRepository{NewInMemoryUserRepository()}
	service := NewService(repo)

	_, err := service.Register("Test User", "err@example.com", "Password@123", "", "")
	if err == nil {
		t.Fatal("lookup failure did not abort registration")
	}

	// nothing may be saved when the duplicate check could not run
	if len(repo.users) != 0 {
		t.Fatalf("user saved despite lookup failure")
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "l@example.com", "Password@123", "", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := service.Login("l@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login("l@example.com", "Password@123"); err != nil {
		t.Fatalf("valid login failed: %v", err)
	}
}
