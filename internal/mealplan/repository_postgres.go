package mealplan

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPlanRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlanRepository(db *pgxpool.Pool) *PostgresPlanRepository {
	return &PostgresPlanRepository{db: db}
}

func (r *PostgresPlanRepository) Save(ctx context.Context, plan *MealPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO meal_plans (id, user_id, start_date, end_date, plan, total_calories)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		plan.ID, plan.UserID, plan.StartDate, plan.EndDate,
		payload, plan.TotalCalories,
	)
	return err
}

func (r *PostgresPlanRepository) ListByUser(ctx context.Context, userID string) ([]*MealPlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT plan
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*MealPlan
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		plan := &MealPlan{}
		if err := json.Unmarshal(payload, plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}
