package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/genre/model"
	"mediadb-backend/internal/domains/genre/service"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

type GenreHandler struct {
	service service.GenreService
}

func NewGenreHandler(service service.GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

// Create handles POST /genres (admin only).
func (h *GenreHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	if !permissions.IsAdmin(actor) {
		response.Forbidden(c, "Only for admins!")
		return
	}

	var req model.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	genre, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, genre)
}

// List handles GET /genres (public). Supports ?search= on name.
func (h *GenreHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	genres, total, err := h.service.List(c.Request.Context(), c.Query("search"), p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, genres, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Get handles GET /genres/:slug (public).
func (h *GenreHandler) Get(c *gin.Context) {
	genre, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, genre)
}

// Delete handles DELETE /genres/:slug (admin only).
func (h *GenreHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	if !permissions.IsAdmin(actor) {
		response.Forbidden(c, "Only for admins!")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *GenreHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrGenreNotFound):
		response.NotFound(c, "Genre not found")
	case errors.Is(err, model.ErrGenreSlugTaken):
		response.Conflict(c, "Genre slug already exists")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
