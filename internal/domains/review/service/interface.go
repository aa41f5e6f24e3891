package service

import (
	"context"

	"mediadb-backend/internal/domains/review/model"
	usermodel "mediadb-backend/internal/domains/user/model"
)

// ReviewService coordinates review mutation with title existence checks
// and rating cache invalidation. All operations are scoped to a title;
// a review that belongs to a different title is reported as not found.
type ReviewService interface {
	Create(ctx context.Context, titleID int64, author *usermodel.User, req *model.CreateReviewRequest) (*model.Review, error)
	GetByID(ctx context.Context, titleID, reviewID int64) (*model.Review, error)
	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]*model.Review, int, error)
	Update(ctx context.Context, titleID, reviewID int64, req *model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, titleID, reviewID int64) error
}
