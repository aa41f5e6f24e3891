package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	categorymodel "mediadb-backend/internal/domains/category/model"
	genremodel "mediadb-backend/internal/domains/genre/model"
	"mediadb-backend/internal/domains/title/model"
	"mediadb-backend/internal/domains/title/repository"
	"mediadb-backend/internal/domains/title/service"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

type TitleHandler struct {
	service service.TitleService
}

func NewTitleHandler(service service.TitleService) *TitleHandler {
	return &TitleHandler{service: service}
}

func parseTitleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Title not found")
		return 0, false
	}
	return id, true
}

func requireAdmin(c *gin.Context) bool {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return false
	}
	if !permissions.IsAdmin(actor) {
		response.Forbidden(c, "Only for admins!")
		return false
	}
	return true
}

// Create handles POST /titles (admin only). Category and genres must
// pre-exist; unresolved slugs are a validation failure, not a 404.
func (h *TitleHandler) Create(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req model.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	title, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, title)
}

// List handles GET /titles (public) with the optional filters
// ?name=, ?category=, ?genre=a,b and ?year=.
func (h *TitleHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	filter := model.Filter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Genres:   repository.ParseGenreList(c.Query("genre")),
	}
	if rawYear := c.Query("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			response.BadRequest(c, "year must be an integer")
			return
		}
		filter.Year = &year
	}

	titles, total, err := h.service.List(c.Request.Context(), filter, p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, titles, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Get handles GET /titles/:title_id (public).
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := parseTitleID(c)
	if !ok {
		return
	}

	title, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, title)
}

// Update handles PATCH /titles/:title_id (admin only).
func (h *TitleHandler) Update(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, ok := parseTitleID(c)
	if !ok {
		return
	}

	var req model.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	title, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, title)
}

// Delete handles DELETE /titles/:title_id (admin only). Reviews and their
// comments cascade with the title.
func (h *TitleHandler) Delete(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, ok := parseTitleID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// handleCreateError additionally maps unresolved category/genre references,
// which are 400s on the write paths.
func (h *TitleHandler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, categorymodel.ErrCategoryNotFound):
		response.BadRequest(c, "Category not found")
	case errors.Is(err, genremodel.ErrGenreNotFound):
		response.BadRequest(c, "Genre not found: "+err.Error())
	default:
		h.handleError(c, err)
	}
}

func (h *TitleHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrTitleNotFound):
		response.NotFound(c, "Title not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
