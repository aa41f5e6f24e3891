package repository

import (
	"context"

	"mediadb-backend/internal/domains/title/model"
)

// TitleRepository owns title row mutation, the genre join relation and the
// joined aggregate reads (title + mean review score). Lookups return
// model.ErrTitleNotFound when no row matches.
type TitleRepository interface {
	// Create inserts the title and its genre join rows in one transaction.
	// The category id is taken from title.Category (nil means no category).
	Create(ctx context.Context, title *model.Title, genreIDs []int64) error

	// GetByID returns the title with its category, genres and mean review
	// score (nil rating when no reviews exist).
	GetByID(ctx context.Context, id int64) (*model.Title, error)

	// List returns titles matching the filter with their aggregates and the
	// total match count.
	List(ctx context.Context, filter model.Filter, limit, offset int) ([]*model.Title, int, error)

	// Update rewrites the title row; when replaceGenres is set the join rows
	// are replaced by genreIDs within the same transaction.
	Update(ctx context.Context, title *model.Title, genreIDs []int64, replaceGenres bool) error

	// Delete removes the title; its reviews and their comments cascade.
	Delete(ctx context.Context, id int64) error
}
