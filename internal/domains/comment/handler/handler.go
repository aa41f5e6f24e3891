package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediadb-backend/internal/domains/comment/model"
	"mediadb-backend/internal/domains/comment/service"
	reviewmodel "mediadb-backend/internal/domains/review/model"
	titlemodel "mediadb-backend/internal/domains/title/model"
	"mediadb-backend/internal/shared/middleware"
	"mediadb-backend/internal/shared/permissions"
	"mediadb-backend/internal/shared/response"
	"mediadb-backend/internal/shared/utils"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type pathIDs struct {
	titleID   int64
	reviewID  int64
	commentID int64
}

func parseIDs(c *gin.Context) (pathIDs, bool) {
	var ids pathIDs
	var err error

	if ids.titleID, err = strconv.ParseInt(c.Param("title_id"), 10, 64); err != nil {
		response.NotFound(c, "Title not found")
		return ids, false
	}
	if ids.reviewID, err = strconv.ParseInt(c.Param("review_id"), 10, 64); err != nil {
		response.NotFound(c, "Review not found")
		return ids, false
	}
	if raw := c.Param("comment_id"); raw != "" {
		if ids.commentID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			response.NotFound(c, "Comment not found")
			return ids, false
		}
	}
	return ids, true
}

// Create handles POST /titles/:title_id/reviews/:review_id/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	ids, ok := parseIDs(c)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.Create(c.Request.Context(), ids.titleID, ids.reviewID, actor, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// List handles GET /titles/:title_id/reviews/:review_id/comments (public).
func (h *CommentHandler) List(c *gin.Context) {
	ids, ok := parseIDs(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	comments, total, err := h.service.ListByReview(c.Request.Context(), ids.titleID, ids.reviewID, p.Limit(), p.Offset())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
	})
}

// Get handles GET /titles/:title_id/reviews/:review_id/comments/:comment_id (public).
func (h *CommentHandler) Get(c *gin.Context) {
	ids, ok := parseIDs(c)
	if !ok {
		return
	}

	comment, err := h.service.GetByID(c.Request.Context(), ids.titleID, ids.reviewID, ids.commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Update handles PATCH .../comments/:comment_id. The author, a moderator
// or an admin may edit.
func (h *CommentHandler) Update(c *gin.Context) {
	ids, ok := h.authorize(c)
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.Update(c.Request.Context(), ids.titleID, ids.reviewID, ids.commentID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Delete handles DELETE .../comments/:comment_id.
func (h *CommentHandler) Delete(c *gin.Context) {
	ids, ok := h.authorize(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), ids.titleID, ids.reviewID, ids.commentID); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *CommentHandler) authorize(c *gin.Context) (pathIDs, bool) {
	actor, authed := middleware.CurrentUser(c)
	if !authed {
		response.Unauthorized(c, "authentication required")
		return pathIDs{}, false
	}

	ids, ok := parseIDs(c)
	if !ok {
		return ids, false
	}

	comment, err := h.service.GetByID(c.Request.Context(), ids.titleID, ids.reviewID, ids.commentID)
	if err != nil {
		h.handleError(c, err)
		return ids, false
	}

	if !permissions.CanModerate(actor, comment.AuthorID) {
		response.Forbidden(c, "You can only modify your own comments")
		return ids, false
	}
	return ids, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, titlemodel.ErrTitleNotFound):
		response.NotFound(c, "Title not found")
	case errors.Is(err, reviewmodel.ErrReviewNotFound):
		response.NotFound(c, "Review not found")
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
