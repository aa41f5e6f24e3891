package service

import (
	"context"

	"mediadb-backend/internal/domains/review/model"
	"mediadb-backend/internal/domains/review/repository"
	titlemodel "mediadb-backend/internal/domains/title/model"
	titlerepo "mediadb-backend/internal/domains/title/repository"
	usermodel "mediadb-backend/internal/domains/user/model"
	"mediadb-backend/pkg/cache"
	"mediadb-backend/pkg/logger"
)

type reviewService struct {
	repo   repository.ReviewRepository
	titles titlerepo.TitleRepository
	cache  cache.Cache
}

func NewReviewService(repo repository.ReviewRepository, titles titlerepo.TitleRepository, c cache.Cache) ReviewService {
	return &reviewService{repo: repo, titles: titles, cache: c}
}

func (s *reviewService) Create(ctx context.Context, titleID int64, author *usermodel.User, req *model.CreateReviewRequest) (*model.Review, error) {
	if _, err := s.titles.GetByID(ctx, titleID); err != nil {
		return nil, err
	}

	// Friendlier than waiting for the unique violation; the constraint
	// still closes the race between the check and the insert.
	exists, err := s.repo.Exists(ctx, author.ID, titleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrAlreadyReviewed
	}

	review := &model.Review{
		Text:     req.Text,
		Score:    req.Score,
		Author:   author.Username,
		AuthorID: author.ID,
		TitleID:  titleID,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateRating(ctx, titleID)
	return review, nil
}

func (s *reviewService) GetByID(ctx context.Context, titleID, reviewID int64) (*model.Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.TitleID != titleID {
		return nil, model.ErrReviewNotFound
	}
	return review, nil
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]*model.Review, int, error) {
	if _, err := s.titles.GetByID(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByTitle(ctx, titleID, limit, offset)
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, req *model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.GetByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.invalidateRating(ctx, titleID)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64) error {
	if _, err := s.GetByID(ctx, titleID, reviewID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.invalidateRating(ctx, titleID)
	return nil
}

// invalidateRating drops the cached title aggregate so the next read
// recomputes the average score.
func (s *reviewService) invalidateRating(ctx context.Context, titleID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, titlemodel.CacheKey(titleID)); err != nil {
		logger.Warn("Failed to invalidate title cache", err)
	}
}
