package repository

import (
	"context"

	"mediadb-backend/internal/domains/category/model"
)

// CategoryRepository owns category row mutation. Lookups return
// model.ErrCategoryNotFound when no row matches.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	// List returns categories matching the optional case-insensitive name
	// search, newest-slug-first, with the total match count.
	List(ctx context.Context, search string, limit, offset int) ([]*model.Category, int, error)
	// Delete removes the category; titles referencing it keep existing with
	// a null category (FK ON DELETE SET NULL).
	Delete(ctx context.Context, slug string) error
}
