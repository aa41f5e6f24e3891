package repository

import (
	"context"

	"mediadb-backend/internal/domains/genre/model"
)

// GenreRepository owns genre row mutation. Lookups return
// model.ErrGenreNotFound when no row matches.
type GenreRepository interface {
	Create(ctx context.Context, genre *model.Genre) error
	GetBySlug(ctx context.Context, slug string) (*model.Genre, error)
	List(ctx context.Context, search string, limit, offset int) ([]*model.Genre, int, error)
	// Delete removes the genre; only join rows to titles are cascade-deleted,
	// the titles themselves stay.
	Delete(ctx context.Context, slug string) error
}
