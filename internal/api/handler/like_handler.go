package handler

import (
	"errors"

	"beatstream-go/internal/api/middleware"
	"beatstream-go/internal/api/response"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like POST /api/v1/videos/:slug/like
func (h *LikeHandler) Like(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	if err := h.likeService.Like(c.Request.Context(), principal, c.Param("slug")); err != nil {
		handleLikeError(c, err)
		return
	}

	response.NoContent(c)
}

// Unlike DELETE /api/v1/videos/:slug/like
func (h *LikeHandler) Unlike(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	if err := h.likeService.Unlike(c.Request.Context(), principal, c.Param("slug")); err != nil {
		handleLikeError(c, err)
		return
	}

	response.NoContent(c)
}

// GetLikedVideos GET /api/v1/user/videos
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	skip, limit := parsePagination(c)

	videos, err := h.likeService.List(c.Request.Context(), principal, skip, limit)
	if err != nil {
		logger.Error("List liked videos failed", zap.Error(err))
		response.InternalError(c, "failed to list liked videos")
		return
	}

	response.OK(c, "liked videos listed", videos)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrNotLiked):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, try again later")
	}
}
