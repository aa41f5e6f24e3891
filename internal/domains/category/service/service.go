package service

import (
	"context"

	"mediadb-backend/internal/domains/category/model"
	"mediadb-backend/internal/domains/category/repository"
)

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// Create inserts the category. Slug uniqueness is guaranteed by the store
// constraint; a violation surfaces as model.ErrCategorySlugTaken.
func (s *categoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	category := &model.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *categoryService) List(ctx context.Context, search string, limit, offset int) ([]*model.Category, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *categoryService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
