package handler

import (
	"errors"
	"strconv"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/api/middleware"
	"beatstream-go/internal/api/response"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TokenHandler struct {
	tokenService *service.TokenService
}

func NewTokenHandler(tokenService *service.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// Create POST /api/v1/users/tokens
func (h *TokenHandler) Create(c *gin.Context) {
	var req dto.NewTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	token, err := h.tokenService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		logger.Error("Create token failed", zap.Error(err))
		response.InternalError(c, "failed to create token")
		return
	}

	response.Created(c, "token created", token)
}

// GetAll GET /api/v1/users/tokens
func (h *TokenHandler) GetAll(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	tokens, err := h.tokenService.List(c.Request.Context(), principal)
	if err != nil {
		logger.Error("List tokens failed", zap.Error(err))
		response.InternalError(c, "failed to list tokens")
		return
	}

	response.OK(c, "tokens listed", tokens)
}

// Revoke DELETE /api/v1/users/tokens/:id
func (h *TokenHandler) Revoke(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid token id")
		return
	}

	principal, _ := middleware.GetPrincipal(c)

	if err := h.tokenService.Revoke(c.Request.Context(), id, principal); err != nil {
		if errors.Is(err, service.ErrUserTokenNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Revoke token failed", zap.Error(err))
		response.InternalError(c, "failed to revoke token")
		return
	}

	response.NoContent(c)
}
