package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/review/model"
	"mediadb-backend/internal/domains/review/service"
	titlemodel "mediadb-backend/internal/domains/title/model"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// parseIDs pulls the title and review path parameters. A non-numeric id
// behaves like a missing resource.
func parseIDs(c *gin.Context) (titleID, reviewID int64, ok bool) {
	titleID, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Title not found")
		return 0, 0, false
	}
	if raw := c.Param("review_id"); raw != "" {
		reviewID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.NotFound(c, "Review not found")
			return 0, 0, false
		}
	}
	return titleID, reviewID, true
}

// Create handles POST /titles/:title_id/reviews. Any authenticated user
// may review, once per title.
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, _, ok := parseIDs(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.Create(c.Request.Context(), titleID, actor, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// List handles GET /titles/:title_id/reviews (public).
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, _, ok := parseIDs(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	reviews, total, err := h.service.ListByTitle(c.Request.Context(), titleID, p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reviews, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Get handles GET /titles/:title_id/reviews/:review_id (public).
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, reviewID, ok := parseIDs(c)
	if !ok {
		return
	}

	review, err := h.service.GetByID(c.Request.Context(), titleID, reviewID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, review)
}

// Update handles PATCH /titles/:title_id/reviews/:review_id. The author,
// a moderator or an admin may edit.
func (h *ReviewHandler) Update(c *gin.Context) {
	titleID, reviewID, ok := h.authorize(c)
	if !ok {
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.service.Update(c.Request.Context(), titleID, reviewID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, review)
}

// Delete handles DELETE /titles/:title_id/reviews/:review_id. Comments on
// the review cascade with it.
func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, reviewID, ok := h.authorize(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), titleID, reviewID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// authorize loads the addressed review and checks that the caller may
// modify it. Existence is checked before ownership so a stranger probing
// another user's review ids still learns only found/not found.
func (h *ReviewHandler) authorize(c *gin.Context) (titleID, reviewID int64, ok bool) {
	actor, authed := middleware.CurrentUser(c)
	if !authed {
		response.Unauthorized(c, "authentication required")
		return 0, 0, false
	}

	titleID, reviewID, ok = parseIDs(c)
	if !ok {
		return 0, 0, false
	}

	review, err := h.service.GetByID(c.Request.Context(), titleID, reviewID)
	if err != nil {
		h.handleError(c, err)
		return 0, 0, false
	}

	if !permissions.CanModerate(actor, review.AuthorID) {
		response.Forbidden(c, "You can only modify your own reviews")
		return 0, 0, false
	}
	return titleID, reviewID, true
}

func (h *ReviewHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, titlemodel.ErrTitleNotFound):
		response.NotFound(c, "Title not found")
	case errors.Is(err, model.ErrReviewNotFound):
		response.NotFound(c, "Review not found")
	case errors.Is(err, model.ErrAlreadyReviewed):
		response.Conflict(c, "You already reviewed this title")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
