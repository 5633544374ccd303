package handler

import (
	"errors"
	"strconv"

	"beatstream-go/internal/api/response"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// PreSigned GET /api/v1/upload/pre_signed?key&expires_in
func (h *UploadHandler) PreSigned(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		response.BadRequest(c, "query parameter key is required")
		return
	}

	expiresIn := 0
	if v := c.Query("expires_in"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "invalid expires_in")
			return
		}
		expiresIn = parsed
	}

	url, err := h.uploadService.PresignUpload(c.Request.Context(), key, expiresIn)
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			logger.Error("Presign upload failed", zap.Error(err))
			response.BadGateway(c, "object store unavailable")
			return
		}
		logger.Error("Presign upload failed", zap.Error(err))
		response.InternalError(c, "failed to presign upload")
		return
	}

	response.OK(c, "upload url issued", gin.H{
		"url":        url,
		"expires_in": service.NormalizeUploadExpiry(expiresIn),
	})
}
