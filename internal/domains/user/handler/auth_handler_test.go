package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/internal/shared/response"
)

// stubUserService lets each test script the service layer.
type stubUserService struct {
	signup     func(req model.SignupRequest) (*model.SignupResponse, error)
	issueToken func(req model.TokenRequest) (*model.TokenResponse, error)
}

func (s *stubUserService) Signup(_ context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	return s.signup(req)
}

func (s *stubUserService) IssueToken(_ context.Context, req model.TokenRequest) (*model.TokenResponse, error) {
	return s.issueToken(req)
}

func (s *stubUserService) GetByUsername(_ context.Context, _ string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserService) List(_ context.Context, _, _ int) ([]*model.User, int, error) {
	return nil, 0, nil
}

func (s *stubUserService) Create(_ context.Context, _ model.CreateUserRequest) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) Update(_ context.Context, _ string, _ model.UpdateUserRequest) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, _ int64, _ model.UpdateProfileRequest) (*model.User, error) {
	return nil, nil
}

func (s *stubUserService) Delete(_ context.Context, _ string) error { return nil }

func authRouter(svc *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/auth/signup", h.Signup)
	router.POST("/auth/token", h.IssueToken)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	var parsed response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestSignupOK(t *testing.T) {
	svc := &stubUserService{
		signup: func(req model.SignupRequest) (*model.SignupResponse, error) {
			return &model.SignupResponse{Username: req.Username, Email: req.Email}, nil
		},
	}

	rec, parsed := doJSON(t, authRouter(svc), http.MethodPost, "/auth/signup",
		`{"username":"alice","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, parsed.Success)
}

func TestSignupValidationFailure(t *testing.T) {
	svc := &stubUserService{
		signup: func(model.SignupRequest) (*model.SignupResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}

	rec, parsed := doJSON(t, authRouter(svc), http.MethodPost, "/auth/signup",
		`{"username":"me","email":"me@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, parsed.Error)
	assert.Equal(t, "BAD_REQUEST", parsed.Error.Code)
}

func TestSignupMalformedBody(t *testing.T) {
	svc := &stubUserService{}

	rec, _ := doJSON(t, authRouter(svc), http.MethodPost, "/auth/signup", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupUsernameTaken(t *testing.T) {
	svc := &stubUserService{
		signup: func(model.SignupRequest) (*model.SignupResponse, error) {
			return nil, model.ErrUsernameTaken
		},
	}

	rec, parsed := doJSON(t, authRouter(svc), http.MethodPost, "/auth/signup",
		`{"username":"alice","email":"alice@example.com"}`)

	// Duplicates stay 400 on the wire, flagged by the CONFLICT code.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, parsed.Error)
	assert.Equal(t, "CONFLICT", parsed.Error.Code)
}

func TestIssueTokenOK(t *testing.T) {
	svc := &stubUserService{
		issueToken: func(model.TokenRequest) (*model.TokenResponse, error) {
			return &model.TokenResponse{AccessToken: "token123", TokenType: "bearer"}, nil
		},
	}

	rec, parsed := doJSON(t, authRouter(svc), http.MethodPost, "/auth/token",
		`{"username":"alice","confirmation_code":"abc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, parsed.Success)
}

func TestIssueTokenInvalidCredentials(t *testing.T) {
	svc := &stubUserService{
		issueToken: func(model.TokenRequest) (*model.TokenResponse, error) {
			return nil, model.ErrInvalidCredentials
		},
	}

	rec, parsed := doJSON(t, authRouter(svc), http.MethodPost, "/auth/token",
		`{"username":"alice","confirmation_code":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.NotNil(t, parsed.Error)
	assert.Equal(t, "UNAUTHORIZED", parsed.Error.Code)
}
