package service

import (
	"context"

	"mediadb-backend/internal/domains/comment/model"
	"mediadb-backend/internal/domains/comment/repository"
	reviewmodel "mediadb-backend/internal/domains/review/model"
	reviewrepo "mediadb-backend/internal/domains/review/repository"
	usermodel "mediadb-backend/internal/domains/user/model"
)

type commentService struct {
	repo    repository.CommentRepository
	reviews reviewrepo.ReviewRepository
}

func NewCommentService(repo repository.CommentRepository, reviews reviewrepo.ReviewRepository) CommentService {
	return &commentService{repo: repo, reviews: reviews}
}

// resolveReview verifies the addressed review exists under the addressed
// title before any comment work.
func (s *commentService) resolveReview(ctx context.Context, titleID, reviewID int64) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.TitleID != titleID {
		return reviewmodel.ErrReviewNotFound
	}
	return nil
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID int64, author *usermodel.User, req *model.CreateCommentRequest) (*model.Comment, error) {
	if err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:     req.Text,
		Author:   author.Username,
		AuthorID: author.ID,
		ReviewID: reviewID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetByID(ctx context.Context, titleID, reviewID, commentID int64) (*model.Comment, error) {
	if err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.ReviewID != reviewID {
		return nil, model.ErrCommentNotFound
	}
	return comment, nil
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, limit, offset int) ([]*model.Comment, int, error) {
	if err := s.resolveReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByReview(ctx, reviewID, limit, offset)
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID int64, req *model.UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.GetByID(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID int64) error {
	if _, err := s.GetByID(ctx, titleID, reviewID, commentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, commentID)
}
