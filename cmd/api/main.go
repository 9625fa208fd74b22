package main

import (
	"context"
	"log"
	"os"
	"time"

	"rasoi/internal/auth"
	"rasoi/internal/catalog"
	"rasoi/internal/db"
	"rasoi/internal/inventory"
	"rasoi/internal/mealplan"
	"rasoi/internal/middleware"
	"rasoi/internal/notifications"
	"rasoi/internal/orders"
	"rasoi/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	planRepo := mealplan.NewPostgresPlanRepository(pgDB)
	inventoryRepo := inventory.NewPostgresRepository(pgDB)
	notificationRepo := notifications.NewPostgresRepository(pgDB)
	orderRepo := orders.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	catalogService := catalog.NewService(catalogRepo, r2Client)

	notificationService := notifications.NewService(notificationRepo)

	ledger := inventory.NewLedger(inventoryRepo, notificationService)
	analytics := inventory.NewAnalytics(inventoryRepo, orders.NewUsageReader(orderRepo))

	planService := mealplan.NewService(catalogRepo, planRepo, mealplan.NewSelector(nil))

	orderService := orders.NewService(orderRepo, ledger)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	planHandler := mealplan.NewHandler(planService)
	inventoryHandler := inventory.NewHandler(ledger, inventoryRepo, analytics)
	notificationHandler := notifications.NewHandler(notificationService)
	orderHandler := orders.NewHandler(orderService)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	meals := r.Group("/meals")
	meals.Use(middleware.AuthMiddleware())
	{
		meals.GET("", catalogHandler.ListMeals)

		vendor := meals.Group("")
		vendor.Use(middleware.RequireRole(auth.RoleRestaurantAgent, auth.RoleAdmin))
		{
			vendor.POST("", catalogHandler.CreateMeal)
			vendor.POST("/:id/image", catalogHandler.UploadImage)
		}
	}

	// ───────────────────────── MEAL PLAN ROUTES ─────────────────────────
	plans := r.Group("/meal-plan")
	plans.Use(middleware.AuthMiddleware())
	{
		plans.POST("", planHandler.Generate)
		plans.GET("", planHandler.List)
	}

	// ───────────────────────── INVENTORY ROUTES ─────────────────────────
	inv := r.Group("/inventory")
	inv.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleRestaurantAgent, auth.RoleAdmin),
	)
	{
		inv.POST("", inventoryHandler.ApplyUpdates)
		inv.PUT("/items", inventoryHandler.UpsertItem)
		inv.GET("", inventoryHandler.List)
		inv.GET("/analytics", inventoryHandler.GetAnalytics)
	}

	// ───────────────────────── NOTIFICATION ROUTES ─────────────────────────
	notifGroup := r.Group("/notifications")
	notifGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleRestaurantAgent, auth.RoleAdmin),
	)
	{
		notifGroup.GET("", notificationHandler.ListPending)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware())
	{
		orderGroup.POST("", orderHandler.Place)

		history := orderGroup.Group("")
		history.Use(middleware.RequireRole(auth.RoleRestaurantAgent, auth.RoleAdmin))
		{
			history.GET("", orderHandler.History)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
