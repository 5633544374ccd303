package handler

import (
	"errors"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/api/middleware"
	"beatstream-go/internal/api/response"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/videos/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.NewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	comment, err := h.commentService.Create(c.Request.Context(), principal, c.Param("slug"), req.Text)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "comment created", comment)
}

// GetForVideo GET /api/v1/videos/:slug/comments
func (h *CommentHandler) GetForVideo(c *gin.Context) {
	comments, err := h.commentService.GetForVideo(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comments listed", comments)
}

// GetAll GET /api/v1/comments
func (h *CommentHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	comments, err := h.commentService.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		logger.Error("List comments failed", zap.Error(err))
		response.InternalError(c, "failed to list comments")
		return
	}

	total, err := h.commentService.Count(c.Request.Context())
	if err != nil {
		logger.Error("Count comments failed", zap.Error(err))
		response.InternalError(c, "failed to list comments")
		return
	}

	response.TotalCount(c, total)
	response.OK(c, "comments listed", comments)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, try again later")
	}
}
