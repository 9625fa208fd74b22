package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	// Set JWT_SECRET for testing
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	user := &User{
		ID:           uuid.New().String(),
		Email:        "test@example.com",
		Role:         RoleRestaurantAgent,
		RestaurantID: uuid.New().String(),
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != user.ID {
		t.Fatalf("Expected userID %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("Expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != user.Role {
		t.Fatalf("Expected role %s, got %s", user.Role, claims.Role)
	}
	if claims.RestaurantID != user.RestaurantID {
		t.Fatalf("Expected restaurantID %s, got %s", user.RestaurantID, claims.RestaurantID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token validated")
	}
}
