package notifications

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, n *RestockNotification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO restock_notifications (id, type, restaurant_id, ingredient_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		n.ID, n.Type, n.RestaurantID, n.IngredientID, n.Status, n.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID, status string,
) ([]*RestockNotification, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, type, restaurant_id, ingredient_id, status, created_at
		FROM restock_notifications
		WHERE restaurant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`, restaurantID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*RestockNotification
	for rows.Next() {
		n := &RestockNotification{}
		if err := rows.Scan(
			&n.ID, &n.Type, &n.RestaurantID,
			&n.IngredientID, &n.Status, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}
