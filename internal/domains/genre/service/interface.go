package service

import (
	"context"

	"mediadb-backend/internal/domains/genre/model"
)

type GenreService interface {
	Create(ctx context.Context, req model.CreateGenreRequest) (*model.Genre, error)
	GetBySlug(ctx context.Context, slug string) (*model.Genre, error)
	List(ctx context.Context, search string, limit, offset int) ([]*model.Genre, int, error)
	Delete(ctx context.Context, slug string) error
}
