package service

import (
	"context"

	"mediadb-backend/internal/domains/title/model"
)

type TitleService interface {
	// Create resolves the category and genre slugs and inserts the title.
	// Unresolvable slugs surface as the respective not-found sentinels.
	Create(ctx context.Context, req model.CreateTitleRequest) (*model.Title, error)

	// GetByID returns the title with its mean review score, reading through
	// the cache when one is configured.
	GetByID(ctx context.Context, id int64) (*model.Title, error)

	List(ctx context.Context, filter model.Filter, limit, offset int) ([]*model.Title, int, error)
	Update(ctx context.Context, id int64, req model.UpdateTitleRequest) (*model.Title, error)
	Delete(ctx context.Context, id int64) error
}
