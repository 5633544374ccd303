package handler

import (
	"errors"
	"strconv"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/api/response"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Schedule read window defaults and cap. The default window mirrors
// the slug-reuse window; the cap bounds the query regardless of input.
const (
	scheduleWindowBefore = 2 * 24 * time.Hour
	scheduleWindowAfter  = 31 * 24 * time.Hour
	scheduleWindowMax    = 45 * 24 * time.Hour
)

type LiveStreamHandler struct {
	streamService *service.LiveStreamService
}

func NewLiveStreamHandler(streamService *service.LiveStreamService) *LiveStreamHandler {
	return &LiveStreamHandler{streamService: streamService}
}

// GetAll GET /api/v1/livestreams?start&end
func (h *LiveStreamHandler) GetAll(c *gin.Context) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today.Add(-scheduleWindowBefore)
	end := today.Add(scheduleWindowAfter)

	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "invalid start date, expected YYYY-MM-DD")
			return
		}
		start = parsed
		end = start.Add(scheduleWindowAfter)
	}
	if v := c.Query("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "invalid end date, expected YYYY-MM-DD")
			return
		}
		// Include broadcasts starting anywhere on the end date.
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	if end.Before(start) {
		response.BadRequest(c, "end must not be before start")
		return
	}
	if end.Sub(start) > scheduleWindowMax {
		end = start.Add(scheduleWindowMax)
	}

	streams, err := h.streamService.GetAll(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("List livestreams failed", zap.Error(err))
		response.InternalError(c, "failed to list livestreams")
		return
	}

	response.OK(c, "livestreams listed", streams)
}

// GetByID GET /api/v1/livestreams/:id
func (h *LiveStreamHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid livestream id")
		return
	}

	stream, err := h.streamService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleLiveStreamError(c, err)
		return
	}

	response.OK(c, "livestream fetched", stream)
}

// Create POST /api/v1/livestreams
func (h *LiveStreamHandler) Create(c *gin.Context) {
	var req dto.NewLiveStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	stream, err := h.streamService.Create(c.Request.Context(), &req)
	if err != nil {
		handleLiveStreamError(c, err)
		return
	}

	response.Created(c, "livestream created", stream)
}

// Update PUT /api/v1/livestreams/:id
func (h *LiveStreamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid livestream id")
		return
	}

	var req dto.UpdateLiveStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	stream, err := h.streamService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleLiveStreamError(c, err)
		return
	}

	response.OK(c, "livestream updated", stream)
}

// Delete DELETE /api/v1/livestreams/:id
func (h *LiveStreamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid livestream id")
		return
	}

	if err := h.streamService.Delete(c.Request.Context(), id); err != nil {
		handleLiveStreamError(c, err)
		return
	}

	response.NoContent(c)
}

func handleLiveStreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLiveStreamNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrLiveStreamAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrLiveStreamInvalidTime),
		errors.Is(err, service.ErrInvalidSlug):
		response.UnprocessableEntity(c, err.Error())
	default:
		logger.Error("Livestream operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, try again later")
	}
}
