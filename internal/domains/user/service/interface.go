package service

import (
	"context"

	"mediadb-backend/internal/domains/user/model"
)

// UserService carries the account business logic: signup/token flow and the
// admin CRUD surface.
type UserService interface {
	// Signup creates an account or rotates the confirmation code of an
	// existing one, and dispatches the code by email.
	Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error)

	// IssueToken verifies a confirmation code and returns an access token.
	IssueToken(ctx context.Context, req model.TokenRequest) (*model.TokenResponse, error)

	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, int, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (*model.User, error)
	Delete(ctx context.Context, username string) error
}
