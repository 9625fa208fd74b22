package orders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, restaurant_id, user_id, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		order.ID, order.RestaurantID, order.UserID,
		items, order.Total, order.Status, order.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListBetween(
	ctx context.Context,
	restaurantID string,
	start, end time.Time,
) ([]*Order, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, user_id, items, total, status, created_at
		FROM orders
		WHERE restaurant_id = $1
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at
	`, restaurantID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Order
	for rows.Next() {
		order := &Order{}
		var items []byte
		if err := rows.Scan(
			&order.ID, &order.RestaurantID, &order.UserID,
			&items, &order.Total, &order.Status, &order.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	return list, rows.Err()
}
