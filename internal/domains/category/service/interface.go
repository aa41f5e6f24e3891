package service

import (
	"context"

	"mediadb-backend/internal/domains/category/model"
)

type CategoryService interface {
	Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	List(ctx context.Context, search string, limit, offset int) ([]*model.Category, int, error)
	Delete(ctx context.Context, slug string) error
}
