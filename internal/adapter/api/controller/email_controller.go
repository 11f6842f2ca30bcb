package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// EmailController envia emails diretamente e consulta os envios
type EmailController struct {
	mailer intent.Mailer
	repo   email.Repository
	logger logger.Logger
}

// NewEmailController cria uma nova instância de EmailController
func NewEmailController(mailer intent.Mailer, repo email.Repository, logger logger.Logger) *EmailController {
	return &EmailController{
		mailer: mailer,
		repo:   repo,
		logger: logger,
	}
}

// Send envia um email
// @Summary Enviar email
// @Description Envia um email de texto simples e registra a tentativa
// @Tags emails
// @Accept json
// @Produce json
// @Param email body dto.EmailRequest true "Email"
// @Success 200 {object} dto.SuccessResponse{data=dto.EmailResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /emails [post]
func (c *EmailController) Send(ctx *gin.Context) {
	var req dto.EmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	res, err := c.mailer.Send(ctx.Request.Context(), req.To, req.Subject, req.Message)
	if err != nil {
		c.logger.Error("erro ao enviar email", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, intent.MessageBackendUnreachable, err.Error()))
		return
	}

	if !res.Success {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewOutcomeResponse(false, "Failed to send email: "+res.Message, nil))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res.Message, dto.EmailResponse{
		ID:      res.EmailID,
		To:      res.To,
		Subject: req.Subject,
	}))
}

// List lista os envios mais recentes
// @Summary Listar emails
// @Description Lista os últimos envios registrados
// @Tags emails
// @Produce json
// @Param limit query int false "Limite"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /emails [get]
func (c *EmailController) List(ctx *gin.Context) {
	var q dto.Pagination
	_ = ctx.ShouldBindQuery(&q)
	p := dto.GetPagination(q.Limit, 0, 20, 100)

	emails, err := c.repo.List(ctx.Request.Context(), p.Limit)
	if err != nil {
		c.logger.Error("erro ao listar emails", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to list emails", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", emails))
}
