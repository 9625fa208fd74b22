package catalog

import "context"

// Repository defines the catalog data-access contract.
type Repository interface {
	Create(ctx context.Context, meal *Meal) error
	FindByID(ctx context.Context, id string) (*Meal, error)

	// ListByAnyTag returns meals carrying at least one of the given tags.
	// An empty tag list returns the whole catalog.
	ListByAnyTag(ctx context.Context, tags []string) ([]*Meal, error)

	SetImageURL(ctx context.Context, id, url string) error
}
