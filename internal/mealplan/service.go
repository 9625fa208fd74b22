package mealplan

import (
	"context"
	"errors"
	"time"

	"rasoi/internal/catalog"

	"github.com/google/uuid"
)

const (
	MinPlanDuration = 1
	MaxPlanDuration = 30
)

// Day keys are calendar dates in UTC so plan boundaries stay
// deterministic regardless of the server's local clock.
const dayKeyLayout = "2006-01-02"

type Service struct {
	catalog  catalog.Repository
	plans    PlanRepository
	selector *Selector

	// injectable for deterministic day keys in tests
	now func() time.Time
}

func NewService(catalogRepo catalog.Repository, plans PlanRepository, selector *Selector) *Service {
	return &Service{
		catalog:  catalogRepo,
		plans:    plans,
		selector: selector,
		now:      time.Now,
	}
}

// --------------------------------------------------
// Plan generation
// --------------------------------------------------
// GeneratePlan drives the selector across the requested day range and
// accumulates calories and ingredient demand. A selector failure on any
// slot discards the whole in-progress plan.
func (s *Service) GeneratePlan(
	ctx context.Context,
	userID string,
	pref DietPreference,
	duration int,
) (*MealPlan, error) {

	if userID == "" {
		return nil, errors.New("missing user id")
	}
	if duration < MinPlanDuration || duration > MaxPlanDuration {
		return nil, errors.New("duration must be between 1 and 30 days")
	}
	if err := pref.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.catalog.ListByAnyTag(ctx, pref.PreferredCuisines)
	if err != nil {
		return nil, err
	}
	filtered := FilterByDiet(candidates, pref)

	start := s.now().UTC()
	plan := &MealPlan{
		ID:             uuid.New().String(),
		UserID:         userID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, duration),
		DietPreference: pref,
		Meals:          make(map[string]*DayMeals, duration),
		Ingredients:    make(map[string]IngredientDemand),
	}

	for offset := 0; offset < duration; offset++ {
		dayKey := start.AddDate(0, 0, offset).Format(dayKeyLayout)

		day := &DayMeals{}

		if day.Breakfast, err = s.selector.Pick(filtered, SlotBreakfast); err != nil {
			return nil, err
		}
		if day.Lunch, err = s.selector.Pick(filtered, SlotLunch); err != nil {
			return nil, err
		}
		if day.Dinner, err = s.selector.Pick(filtered, SlotDinner); err != nil {
			return nil, err
		}
		for i := 0; i < snacksPerDay; i++ {
			snack, err := s.selector.Pick(filtered, SlotSnack)
			if err != nil {
				return nil, err
			}
			day.Snacks = append(day.Snacks, snack)
		}

		plan.Meals[dayKey] = day
		for _, meal := range []*catalog.Meal{day.Breakfast, day.Lunch, day.Dinner} {
			accumulate(plan, meal)
		}
		for _, snack := range day.Snacks {
			accumulate(plan, snack)
		}
	}

	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// accumulate folds one assigned meal into the plan's running totals.
func accumulate(plan *MealPlan, meal *catalog.Meal) {
	plan.TotalCalories += meal.Calories

	for _, ing := range meal.Ingredients {
		demand, ok := plan.Ingredients[ing.IngredientID]
		if !ok {
			// unit comes from the first occurrence, assumed consistent
			demand.Unit = ing.Unit
		}
		demand.Quantity += ing.Quantity
		plan.Ingredients[ing.IngredientID] = demand
	}
}

// --------------------------------------------------
// Plan history
// --------------------------------------------------
func (s *Service) ListPlans(ctx context.Context, userID string) ([]*MealPlan, error) {
	return s.plans.ListByUser(ctx, userID)
}
