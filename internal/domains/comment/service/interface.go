package service

import (
	"context"

	"mediadb-backend/internal/domains/comment/model"
	usermodel "mediadb-backend/internal/domains/user/model"
)

// CommentService scopes every operation to a (title, review) pair; a
// comment addressed through the wrong title or review is not found.
// Comments never touch the title rating, so no cache work happens here.
type CommentService interface {
	Create(ctx context.Context, titleID, reviewID int64, author *usermodel.User, req *model.CreateCommentRequest) (*model.Comment, error)
	GetByID(ctx context.Context, titleID, reviewID, commentID int64) (*model.Comment, error)
	ListByReview(ctx context.Context, titleID, reviewID int64, limit, offset int) ([]*model.Comment, int, error)
	Update(ctx context.Context, titleID, reviewID, commentID int64, req *model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, titleID, reviewID, commentID int64) error
}
