package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/internal/domain/contact"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// MessageContactReceived é a resposta a um contato registrado
const MessageContactReceived = "Thank you for your message! We will get back to you soon."

// ContactController recebe o formulário de contato
type ContactController struct {
	repo   contact.Repository
	logger logger.Logger
}

// NewContactController cria uma nova instância de ContactController
func NewContactController(repo contact.Repository, logger logger.Logger) *ContactController {
	return &ContactController{
		repo:   repo,
		logger: logger,
	}
}

// Create registra uma mensagem de contato
// @Summary Enviar contato
// @Description Registra uma mensagem do formulário de contato
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.ContactRequest true "Contato"
// @Success 201 {object} dto.SuccessResponse{data=dto.ContactResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contact [post]
func (c *ContactController) Create(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "All fields are required and the email must be valid.", err.Error()))
		return
	}

	ct := req.ToContact()
	if err := c.repo.Create(ctx.Request.Context(), ct); err != nil {
		c.logger.Error("erro ao salvar contato", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to submit message. Please try again.", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(MessageContactReceived, dto.ContactResponse{ID: ct.ID}))
}
