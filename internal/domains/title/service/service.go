package service

import (
	"context"
	"fmt"
	"time"

	categoryrepo "mediadb-backend/internal/domains/category/repository"
	genremodel "mediadb-backend/internal/domains/genre/model"
	genrerepo "mediadb-backend/internal/domains/genre/repository"
	"mediadb-backend/internal/domains/title/model"
	"mediadb-backend/internal/domains/title/repository"
	"mediadb-backend/pkg/cache"
	"mediadb-backend/pkg/logger"
)

const titleCacheTTL = 5 * time.Minute

type titleService struct {
	repo       repository.TitleRepository
	categories categoryrepo.CategoryRepository
	genres     genrerepo.GenreRepository
	cache      cache.Cache
}

// NewTitleService wires the title business logic. cache may be nil; reads
// then always hit the store.
func NewTitleService(
	repo repository.TitleRepository,
	categories categoryrepo.CategoryRepository,
	genres genrerepo.GenreRepository,
	c cache.Cache,
) TitleService {
	return &titleService{
		repo:       repo,
		categories: categories,
		genres:     genres,
		cache:      c,
	}
}

// resolveGenres maps genre slugs to rows, failing on the first slug that
// does not resolve. Creation requires every referenced genre to exist.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]genremodel.Genre, []int64, error) {
	resolved := make([]genremodel.Genre, 0, len(slugs))
	ids := make([]int64, 0, len(slugs))
	for _, slug := range slugs {
		genre, err := s.genres.GetBySlug(ctx, slug)
		if err != nil {
			return nil, nil, fmt.Errorf("%q: %w", slug, err)
		}
		resolved = append(resolved, *genre)
		ids = append(ids, genre.ID)
	}
	return resolved, ids, nil
}

func (s *titleService) Create(ctx context.Context, req model.CreateTitleRequest) (*model.Title, error) {
	category, err := s.categories.GetBySlug(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, genreIDs, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	title := &model.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		Category:    category,
		Genres:      genres,
	}
	if err := s.repo.Create(ctx, title, genreIDs); err != nil {
		return nil, err
	}

	return title, nil
}

func (s *titleService) GetByID(ctx context.Context, id int64) (*model.Title, error) {
	key := model.CacheKey(id)

	if s.cache != nil {
		var cached model.Title
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("title cache read failed", err)
		} else if found {
			return &cached, nil
		}
	}

	title, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, title, titleCacheTTL); err != nil {
			logger.Warn("title cache write failed", err)
		}
	}

	return title, nil
}

func (s *titleService) List(ctx context.Context, filter model.Filter, limit, offset int) ([]*model.Title, int, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

func (s *titleService) Update(ctx context.Context, id int64, req model.UpdateTitleRequest) (*model.Title, error) {
	title, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.categories.GetBySlug(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.Category = category
	}

	var genreIDs []int64
	replaceGenres := req.Genres != nil
	if replaceGenres {
		genres, ids, err := s.resolveGenres(ctx, *req.Genres)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
		genreIDs = ids
	}

	if err := s.repo.Update(ctx, title, genreIDs, replaceGenres); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return title, nil
}

func (s *titleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *titleService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, model.CacheKey(id)); err != nil {
		logger.Warn("title cache invalidation failed", err)
	}
}
