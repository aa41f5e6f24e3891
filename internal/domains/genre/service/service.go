package service

import (
	"context"

	"mediadb-backend/internal/domains/genre/model"
	"mediadb-backend/internal/domains/genre/repository"
)

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req model.CreateGenreRequest) (*model.Genre, error) {
	genre := &model.Genre{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) GetBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *genreService) List(ctx context.Context, search string, limit, offset int) ([]*model.Genre, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *genreService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
