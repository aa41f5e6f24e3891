package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/user/model"
	"mediadb-backend/internal/domains/user/service"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

// UserHandler serves the admin user CRUD and the /users/me self-service
// endpoints.
type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// requireAdmin resolves the actor and gates on the admin predicate.
func requireAdmin(c *gin.Context) (*model.User, bool) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return nil, false
	}
	if !permissions.IsAdmin(actor) {
		response.Forbidden(c, "Only for admins!")
		return nil, false
	}
	return actor, true
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	p := utils.ParsePagination(c)
	users, total, err := h.service.List(c.Request.Context(), p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Get handles GET /users/:username
func (h *UserHandler) Get(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	user, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Update handles PATCH /users/:username
func (h *UserHandler) Update(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Delete handles DELETE /users/:username
func (h *UserHandler) Delete(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// ========================================
// SELF-SERVICE ENDPOINTS
// ========================================

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	response.Success(c, http.StatusOK, actor)
}

// UpdateMe handles PATCH /users/me. Role is immutable via this path: the
// request DTO has no role field.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), actor.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, model.ErrUsernameTaken):
		response.Conflict(c, "Username already taken")
	case errors.Is(err, model.ErrEmailTaken):
		response.Conflict(c, "Email already registered")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
