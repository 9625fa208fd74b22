package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, meal *Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}

	ingredients, err := json.Marshal(meal.Ingredients)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO meals (
			id, name, description, ingredients,
			calories, protein, carbs, fat,
			preparation_time, cooking_time, difficulty, tags, image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		meal.ID, meal.Name, meal.Description, ingredients,
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
		meal.PreparationTime, meal.CookingTime, meal.Difficulty,
		meal.Tags, meal.ImageURL,
	)
	return err
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Meal, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, ingredients,
		       calories, protein, carbs, fat,
		       preparation_time, cooking_time, difficulty, tags, image_url, created_at
		FROM meals
		WHERE id = $1
	`, id)

	meal, err := scanMeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("meal not found")
		}
		return nil, err
	}
	return meal, nil
}

// ListByAnyTag uses the array-overlap operator, the Postgres equivalent
// of a document store's array-contains-any query.
func (r *PostgresRepository) ListByAnyTag(ctx context.Context, tags []string) ([]*Meal, error) {
	query := `
		SELECT id, name, description, ingredients,
		       calories, protein, carbs, fat,
		       preparation_time, cooking_time, difficulty, tags, image_url, created_at
		FROM meals
	`
	args := []interface{}{}
	if len(tags) > 0 {
		query += ` WHERE tags && $1::text[]`
		args = append(args, tags)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []*Meal
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

func (r *PostgresRepository) SetImageURL(ctx context.Context, id, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meals SET image_url = $1 WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("meal not found")
	}
	return nil
}

func scanMeal(row pgx.Row) (*Meal, error) {
	meal := &Meal{}
	var ingredients []byte

	err := row.Scan(
		&meal.ID, &meal.Name, &meal.Description, &ingredients,
		&meal.Calories, &meal.Protein, &meal.Carbs, &meal.Fat,
		&meal.PreparationTime, &meal.CookingTime, &meal.Difficulty,
		&meal.Tags, &meal.ImageURL, &meal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ingredients, &meal.Ingredients); err != nil {
		return nil, err
	}
	return meal, nil
}
