package repository

import (
	"context"

	"mediadb-backend/internal/domains/user/model"
)

// UserRepository owns all user row mutation. Lookups return
// model.ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, int, error)
	Update(ctx context.Context, user *model.User) error
	UpdateConfirmationCode(ctx context.Context, id int64, hashedCode string) error
	Delete(ctx context.Context, id int64) error
}
