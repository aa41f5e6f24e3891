package repository

import (
	"context"

	"mediadb-backend/internal/domains/comment/model"
)

// CommentRepository owns comment rows. Lookups return
// model.ErrCommentNotFound when no row matches.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]*model.Comment, int, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id int64) error
}
