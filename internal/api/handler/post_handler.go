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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GetAll GET /api/v1/posts (visible posts only)
func (h *PostHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)

	posts, err := h.postService.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		logger.Error("List posts failed", zap.Error(err))
		response.InternalError(c, "failed to list posts")
		return
	}

	total, err := h.postService.Count(c.Request.Context())
	if err != nil {
		logger.Error("Count posts failed", zap.Error(err))
		response.InternalError(c, "failed to list posts")
		return
	}

	response.TotalCount(c, total)
	response.OK(c, "posts listed", posts)
}

// GetBySlug GET /api/v1/posts/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handlePostError(c, err)
		return
	}

	response.OK(c, "post fetched", post)
}

// Create POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.NewPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	post, err := h.postService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		handlePostError(c, err)
		return
	}

	response.Created(c, "post created", post)
}

// Update PUT /api/v1/posts/:slug
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	post, err := h.postService.Update(c.Request.Context(), c.Param("slug"), principal, &req)
	if err != nil {
		handlePostError(c, err)
		return
	}

	response.OK(c, "post updated", post)
}

// Delete DELETE /api/v1/posts/:slug
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		handlePostError(c, err)
		return
	}

	response.NoContent(c)
}

// GetHistory GET /api/v1/posts/:slug/history
func (h *PostHandler) GetHistory(c *gin.Context) {
	history, err := h.postService.GetHistory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handlePostError(c, err)
		return
	}

	response.OK(c, "post history fetched", history)
}

func handlePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPostSlugNotUnique),
		errors.Is(err, service.ErrPostTitleNotUnique):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrPostPublishedInPast),
		errors.Is(err, service.ErrHistoryDescriptionEmpty),
		errors.Is(err, service.ErrInvalidSlug):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, service.ErrUpstream):
		logger.Error("Post upstream failed", zap.Error(err))
		response.BadGateway(c, "upstream dependency failed")
	default:
		logger.Error("Post operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, try again later")
	}
}
