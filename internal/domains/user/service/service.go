package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/internal/domains/user/repository"
	"mediadb-backend/internal/infrastructure/email"
	"mediadb-backend/pkg/hash"
	"mediadb-backend/pkg/logger"
	"mediadb-backend/pkg/token"
)

type userService struct {
	repo   repository.UserRepository
	tokens *token.Manager
	mail   email.Sender
}

func NewUserService(repo repository.UserRepository, tokens *token.Manager, mail email.Sender) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		mail:   mail,
	}
}

// newConfirmationCode generates the one-time secret sent by email and the
// bcrypt digest stored on the user row.
func newConfirmationCode() (code, digest string, err error) {
	code = uuid.NewString()
	digest, err = hash.HashCode(code)
	return code, digest, err
}

// =====================================================
// SIGNUP / TOKEN
// =====================================================

func (s *userService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	byUsername, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}
	byEmail, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	// Same account signing up again: rotate the code instead of failing, so
	// a lost confirmation email can be recovered.
	if byUsername != nil && byEmail != nil && byUsername.ID == byEmail.ID {
		code, digest, err := newConfirmationCode()
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdateConfirmationCode(ctx, byUsername.ID, digest); err != nil {
			return nil, err
		}
		s.dispatchCode(ctx, byUsername.Email, code)
		return &model.SignupResponse{Username: byUsername.Username, Email: byUsername.Email}, nil
	}

	if byUsername != nil {
		return nil, model.ErrUsernameTaken
	}
	if byEmail != nil {
		return nil, model.ErrEmailTaken
	}

	code, digest, err := newConfirmationCode()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:         req.Username,
		Email:            req.Email,
		Role:             model.RoleUser,
		ConfirmationCode: digest,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.dispatchCode(ctx, user.Email, code)
	return &model.SignupResponse{Username: user.Username, Email: user.Email}, nil
}

// dispatchCode sends the code and logs failures without failing the signup;
// the user can always sign up again to get a fresh code.
func (s *userService) dispatchCode(ctx context.Context, to, code string) {
	if err := s.mail.SendConfirmationCode(ctx, to, code); err != nil {
		logger.Error("failed to send confirmation code", err)
	}
}

func (s *userService) IssueToken(ctx context.Context, req model.TokenRequest) (*model.TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.VerifyCode(req.ConfirmationCode, user.ConfirmationCode) {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// =====================================================
// CRUD
// =====================================================

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]*model.User, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	// Admin-created accounts still get a code so the user can obtain a token
	// via the normal flow.
	code, digest, err := newConfirmationCode()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:         req.Username,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Bio:              req.Bio,
		Role:             role,
		ConfirmationCode: digest,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.dispatchCode(ctx, user.Email, code)
	return user, nil
}

func applyUserPatch(user *model.User, req model.UpdateUserRequest) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
}

func (s *userService) Update(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applyUserPatch(user, req)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUserPatch(user, model.UpdateUserRequest{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, user.ID)
}
