package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"rasoi/internal/auth"

	"github.com/gin-gonic/gin"
)

func setupRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/protected")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"restaurant_id": c.GetString("restaurantID"),
		})
	})
	return r
}

func tokenFor(t *testing.T, role, restaurantID string) string {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := auth.GenerateToken(&auth.User{
		ID:           "user-1",
		Email:        "test@example.com",
		Role:         role,
		RestaurantID: restaurantID,
	})
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareAttachesClaims(t *testing.T) {
	r := setupRouter()
	token := tokenFor(t, auth.RoleRestaurantAgent, "rest-9")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"restaurant_id":"rest-9"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRequireRoleForbidsCustomer(t *testing.T) {
	r := setupRouter(auth.RoleRestaurantAgent, auth.RoleAdmin)
	token := tokenFor(t, auth.RoleCustomer, "")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	r := setupRouter(auth.RoleRestaurantAgent, auth.RoleAdmin)
	token := tokenFor(t, auth.RoleAdmin, "")

	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
