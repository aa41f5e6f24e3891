package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/internal/domains/user/service"
	"mediadb-backend/internal/shared/response"
)

// AuthHandler serves /auth/signup and /auth/token.
type AuthHandler struct {
	service service.UserService
}

func NewAuthHandler(service service.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// IssueToken handles POST /auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.IssueToken(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUsernameTaken):
		response.Conflict(c, "Username already taken")
	case errors.Is(err, model.ErrEmailTaken):
		response.Conflict(c, "Email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		response.Unauthorized(c, "Invalid credentials")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
