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

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetAll GET /api/v1/videos (public; authenticated callers get the
// is_favorite overlay)
func (h *VideoHandler) GetAll(c *gin.Context) {
	skip, limit := parsePagination(c)
	principal := optionalPrincipal(c)

	videos, err := h.videoService.GetAll(c.Request.Context(), skip, limit, principal)
	if err != nil {
		logger.Error("List videos failed", zap.Error(err))
		response.InternalError(c, "failed to list videos")
		return
	}

	total, err := h.videoService.GetCount(c.Request.Context())
	if err != nil {
		logger.Error("Count videos failed", zap.Error(err))
		response.InternalError(c, "failed to list videos")
		return
	}

	response.TotalCount(c, total)
	response.OK(c, "videos listed", videos)
}

// GetBySlug GET /api/v1/videos/:slug
func (h *VideoHandler) GetBySlug(c *gin.Context) {
	principal := optionalPrincipal(c)

	video, err := h.videoService.GetBySlug(c.Request.Context(), c.Param("slug"), principal)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "video fetched", video)
}

// Search GET /api/v1/videos/search?q=
func (h *VideoHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.BadRequest(c, "query parameter q is required")
		return
	}
	skip, limit := parsePagination(c)

	videos, total, err := h.videoService.Search(c.Request.Context(), q, skip, limit)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.TotalCount(c, total)
	response.OK(c, "videos searched", videos)
}

// Create POST /api/v1/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.NewVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "video created", video)
}

// Update PATCH /api/v1/videos/:slug
func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "video updated", video)
}

// Delete DELETE /api/v1/videos/:slug
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		handleVideoError(c, err)
		return
	}

	response.NoContent(c)
}

// optionalPrincipal returns the authenticated principal as a pointer,
// nil for guests.
func optionalPrincipal(c *gin.Context) *string {
	if principal, ok := middleware.GetPrincipal(c); ok {
		return &principal
	}
	return nil
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoYtIDNotUnique),
		errors.Is(err, service.ErrVideoSlugNotUnique):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrVideoDateInFuture),
		errors.Is(err, service.ErrInvalidSlug):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, service.ErrUpstream):
		logger.Error("Video upstream failed", zap.Error(err))
		response.BadGateway(c, "upstream dependency failed")
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, try again later")
	}
}
