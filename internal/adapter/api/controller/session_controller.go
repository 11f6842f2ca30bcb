package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/pkg/auth"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// SessionController emite as sessões do assistente
type SessionController struct {
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewSessionController cria uma nova instância de SessionController
func NewSessionController(jwtService *auth.JWTService, logger logger.Logger) *SessionController {
	return &SessionController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// Create abre uma nova sessão
// @Summary Nova sessão
// @Description Cria uma sessão e devolve o token de acesso
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	sessionID := uuid.New().String()

	token, expiresAt, err := c.jwtService.GenerateToken(sessionID)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to create session", err.Error()))
		return
	}

	c.logger.Info("Sessão criada", "session_id", sessionID)
	ctx.JSON(http.StatusCreated, dto.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		Welcome:   intent.WelcomeMessage,
	})
}

// Refresh renova o token de uma sessão
// @Summary Renovar token
// @Description Emite um novo token para a mesma sessão, inclusive a partir de um token expirado
// @Tags sessions
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Token atual"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sessions/refresh [post]
func (c *SessionController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	token, expiresAt, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrInvalidClaims) {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.NewErrorResponse(status, "Failed to refresh token", err.Error()))
		return
	}

	claims, err := c.jwtService.ValidateToken(token)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to refresh token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		SessionID: claims.SessionID,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	})
}
