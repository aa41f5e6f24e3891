package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/category/model"
	"mediadb-backend/internal/domains/category/service"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /categories (admin only).
func (h *CategoryHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	if !permissions.IsAdmin(actor) {
		response.Forbidden(c, "Only for admins!")
		return
	}

	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

// List handles GET /categories (public). Supports ?search= on name.
func (h *CategoryHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	categories, total, err := h.service.List(c.Request.Context(), c.Query("search"), p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, categories, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Get handles GET /categories/:slug (public).
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Delete handles DELETE /categories/:slug (admin only). Titles referencing
// the category survive with a null category.
func (h *CategoryHandler) Delete(c *gin.Context) {
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

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	case errors.Is(err, model.ErrCategorySlugTaken):
		response.Conflict(c, "Category slug already exists")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
