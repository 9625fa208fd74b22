package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			restaurant_id UUID NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEAL CATALOG
	// -------------------------------
	mealsSQL := `
		CREATE TABLE IF NOT EXISTS meals (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			ingredients JSONB NOT NULL DEFAULT '[]',
			calories DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
			fat DOUBLE PRECISION NOT NULL DEFAULT 0,
			preparation_time INT NOT NULL DEFAULT 0,
			cooking_time INT NOT NULL DEFAULT 0,
			difficulty VARCHAR(20) NOT NULL DEFAULT 'EASY',
			tags TEXT[] NOT NULL DEFAULT '{}',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, mealsSQL); err != nil {
		return err
	}

	mealTagIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_meals_tags ON meals USING GIN (tags)
	`
	if _, err := db.Exec(ctx, mealTagIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// INVENTORY
	// -------------------------------
	inventorySQL := `
		CREATE TABLE IF NOT EXISTS inventory_items (
			restaurant_id UUID NOT NULL,
			ingredient_id VARCHAR(100) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			category VARCHAR(100) NOT NULL DEFAULT '',
			quantity DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			unit VARCHAR(50) NOT NULL DEFAULT '',
			min_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			max_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			supplier VARCHAR(255) NOT NULL DEFAULT '',
			last_restocked TIMESTAMPTZ NULL,
			next_restock_date TIMESTAMPTZ NULL,
			shelf_life INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant_id, ingredient_id)
		)
	`
	if _, err := db.Exec(ctx, inventorySQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTOCK NOTIFICATIONS
	// -------------------------------
	notificationsSQL := `
		CREATE TABLE IF NOT EXISTS restock_notifications (
			id UUID PRIMARY KEY,
			type VARCHAR(50) NOT NULL DEFAULT 'INVENTORY_LOW',
			restaurant_id UUID NOT NULL,
			ingredient_id VARCHAR(100) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, notificationsSQL); err != nil {
		return err
	}

	notificationIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_restock_restaurant
		ON restock_notifications (restaurant_id, status)
	`
	if _, err := db.Exec(ctx, notificationIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL,
			user_id UUID NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'PLACED',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_restaurant_created
		ON orders (restaurant_id, created_at)
	`
	if _, err := db.Exec(ctx, orderIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEAL PLANS
	// -------------------------------
	mealPlansSQL := `
		CREATE TABLE IF NOT EXISTS meal_plans (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			plan JSONB NOT NULL,
			total_calories DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, mealPlansSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
