package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ApplyDelta mutates the quantity in a single guarded UPDATE, so the
// non-negativity check and the write happen atomically inside Postgres.
func (r *PostgresRepository) ApplyDelta(
	ctx context.Context,
	restaurantID, ingredientID string,
	delta float64,
) (*InventoryItem, error) {

	row := r.db.QueryRow(ctx, `
		UPDATE inventory_items
		SET quantity = quantity + $3,
		    last_restocked = now()
		WHERE restaurant_id = $1
		  AND ingredient_id = $2
		  AND quantity + $3 >= 0
		RETURNING restaurant_id, ingredient_id, name, category, quantity, unit,
		          min_quantity, max_quantity, cost, supplier,
		          last_restocked, next_restock_date, shelf_life
	`, restaurantID, ingredientID, delta)

	item, err := scanItem(row)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Guard rejected the update: distinguish a missing row from one
	// that would have gone negative.
	var exists int
	probe := r.db.QueryRow(ctx, `
		SELECT 1 FROM inventory_items
		WHERE restaurant_id = $1 AND ingredient_id = $2
	`, restaurantID, ingredientID)
	if err := probe.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return nil, ErrInsufficientStock
}

func (r *PostgresRepository) Upsert(ctx context.Context, item *InventoryItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_items (
			restaurant_id, ingredient_id, name, category, quantity, unit,
			min_quantity, max_quantity, cost, supplier,
			last_restocked, next_restock_date, shelf_life
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (restaurant_id, ingredient_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			quantity = EXCLUDED.quantity,
			unit = EXCLUDED.unit,
			min_quantity = EXCLUDED.min_quantity,
			max_quantity = EXCLUDED.max_quantity,
			cost = EXCLUDED.cost,
			supplier = EXCLUDED.supplier,
			next_restock_date = EXCLUDED.next_restock_date,
			shelf_life = EXCLUDED.shelf_life
	`,
		item.RestaurantID, item.IngredientID, item.Name, item.Category,
		item.Quantity, item.Unit, item.MinQuantity, item.MaxQuantity,
		item.Cost, item.Supplier, nullableTime(item.LastRestocked),
		nullableTime(item.NextRestockDate), item.ShelfLife,
	)
	return err
}

func (r *PostgresRepository) GetItem(
	ctx context.Context,
	restaurantID, ingredientID string,
) (*InventoryItem, error) {

	row := r.db.QueryRow(ctx, `
		SELECT restaurant_id, ingredient_id, name, category, quantity, unit,
		       min_quantity, max_quantity, cost, supplier,
		       last_restocked, next_restock_date, shelf_life
		FROM inventory_items
		WHERE restaurant_id = $1 AND ingredient_id = $2
	`, restaurantID, ingredientID)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*InventoryItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT restaurant_id, ingredient_id, name, category, quantity, unit,
		       min_quantity, max_quantity, cost, supplier,
		       last_restocked, next_restock_date, shelf_life
		FROM inventory_items
		WHERE restaurant_id = $1
		ORDER BY ingredient_id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*InventoryItem, error) {
	item := &InventoryItem{}
	var lastRestocked, nextRestock *time.Time

	err := row.Scan(
		&item.RestaurantID, &item.IngredientID, &item.Name, &item.Category,
		&item.Quantity, &item.Unit, &item.MinQuantity, &item.MaxQuantity,
		&item.Cost, &item.Supplier, &lastRestocked, &nextRestock,
		&item.ShelfLife,
	)
	if err != nil {
		return nil, err
	}

	if lastRestocked != nil {
		item.LastRestocked = *lastRestocked
	}
	if nextRestock != nil {
		item.NextRestockDate = *nextRestock
	}
	return item, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
