package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
)

// ImageStore uploads meal photos and returns a public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

// --------------------------------------------------
// Create meal
// --------------------------------------------------
func (s *Service) CreateMeal(ctx context.Context, meal *Meal) (*Meal, error) {
	if meal.Name == "" {
		return nil, errors.New("meal name is required")
	}
	if len(meal.Tags) == 0 {
		return nil, errors.New("at least one tag is required")
	}
	if meal.Calories < 0 || meal.Protein < 0 || meal.Carbs < 0 || meal.Fat < 0 {
		return nil, errors.New("nutrition values cannot be negative")
	}

	switch meal.Difficulty {
	case "":
		meal.Difficulty = DifficultyEasy
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return nil, errors.New("unknown difficulty")
	}

	if err := s.repo.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// --------------------------------------------------
// Query by tags
// --------------------------------------------------
func (s *Service) ListMeals(ctx context.Context, tags []string) ([]*Meal, error) {
	return s.repo.ListByAnyTag(ctx, tags)
}

func (s *Service) GetMeal(ctx context.Context, id string) (*Meal, error) {
	return s.repo.FindByID(ctx, id)
}

// --------------------------------------------------
// Image upload
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	mealID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.images == nil {
		return "", errors.New("image storage not configured")
	}

	if _, err := s.repo.FindByID(ctx, mealID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("meals/%s/%s", mealID, filename)
	url, err := s.images.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, mealID, url); err != nil {
		return "", err
	}
	return url, nil
}
