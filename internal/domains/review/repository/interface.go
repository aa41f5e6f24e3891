package repository

import (
	"context"

	"mediadb-backend/internal/domains/review/model"
)

// ReviewRepository owns review row mutation. Lookups return
// model.ErrReviewNotFound when no row matches; a duplicate (author, title)
// insert returns model.ErrAlreadyReviewed.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id int64) (*model.Review, error)
	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]*model.Review, int, error)
	Exists(ctx context.Context, authorID, titleID int64) (bool, error)
	Update(ctx context.Context, review *model.Review) error
	// Delete removes the review; its comments cascade.
	Delete(ctx context.Context, id int64) error
}
