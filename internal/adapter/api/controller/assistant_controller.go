package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/pkg/auth"
	"github.com/hugohenrick/virtual-assistant/pkg/chat"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// transcriptLimit é o tamanho padrão de uma página da transcrição
const transcriptLimit = 50

// Assistant é o gerenciador de turnos usado pelo controller
type Assistant interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (*intent.ActionResult, error)
	SaveEditor(ctx context.Context, sessionID, filename, content string) (*intent.ActionResult, error)
	ResetSession(sessionID string)
	Session(sessionID string) intent.ConversationState
	Transcript(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error)
	ClearTranscript(ctx context.Context, sessionID string) (int64, error)
}

// AssistantController gerencia as conversas com o assistente
type AssistantController struct {
	assistant Assistant
	logger    logger.Logger
}

// NewAssistantController cria uma nova instância de AssistantController
func NewAssistantController(assistant Assistant, logger logger.Logger) *AssistantController {
	return &AssistantController{
		assistant: assistant,
		logger:    logger,
	}
}

// ProcessMessage processa um turno da conversa
// @Summary Enviar mensagem
// @Description Processa uma mensagem do usuário na sessão autenticada
// @Tags assistant
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param message body dto.MessageRequest true "Mensagem do usuário"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/message [post]
func (c *AssistantController) ProcessMessage(ctx *gin.Context) {
	var req dto.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	sessionID := auth.GetSessionID(ctx)
	result, err := c.assistant.ProcessMessage(ctx.Request.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, intent.ErrEmptyMessage) || errors.Is(err, intent.ErrEmptySession) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
			return
		}
		c.logger.Error("erro ao processar mensagem", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to process message", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssistantResponse(result))
}

// SaveEditor salva o conteúdo editado de um arquivo
// @Summary Salvar edição
// @Description Grava o conteúdo da tela de edição no arquivo
// @Tags assistant
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param editor body dto.EditorSaveRequest true "Arquivo editado"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /assistant/editor/save [post]
func (c *AssistantController) SaveEditor(ctx *gin.Context) {
	var req dto.EditorSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	result, err := c.assistant.SaveEditor(ctx.Request.Context(), auth.GetSessionID(ctx), req.Filename, req.Content)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssistantResponse(result))
}

// GetSession retorna o estado da conversa
// @Summary Estado da sessão
// @Description Retorna a conversa em andamento na sessão autenticada
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /assistant/session [get]
func (c *AssistantController) GetSession(ctx *gin.Context) {
	sessionID := auth.GetSessionID(ctx)
	ctx.JSON(http.StatusOK, dto.SessionStateResponse{
		SessionID:    sessionID,
		Conversation: c.assistant.Session(sessionID),
	})
}

// ResetSession descarta a conversa em andamento
// @Summary Reiniciar sessão
// @Description Descarta a conversa em andamento, como ao abrir um novo chat
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /assistant/session [delete]
func (c *AssistantController) ResetSession(ctx *gin.Context) {
	c.assistant.ResetSession(auth.GetSessionID(ctx))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(intent.WelcomeMessage, nil))
}

// GetTranscript retorna a transcrição da sessão
// @Summary Transcrição
// @Description Retorna as mensagens trocadas na sessão autenticada, das mais antigas para as mais recentes
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param limit query int false "Limite"
// @Param offset query int false "Deslocamento"
// @Success 200 {object} dto.TranscriptResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [get]
func (c *AssistantController) GetTranscript(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	p := dto.GetPagination(limit, offset, transcriptLimit, 500)

	sessionID := auth.GetSessionID(ctx)
	messages, err := c.assistant.Transcript(ctx.Request.Context(), sessionID, p.Limit, p.Offset)
	if err != nil {
		c.logger.Error("erro ao buscar transcrição", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTranscriptResponse(sessionID, messages, p))
}

// DeleteTranscript apaga a transcrição da sessão
// @Summary Apagar transcrição
// @Description Remove as mensagens da sessão autenticada
// @Tags assistant
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assistant/history [delete]
func (c *AssistantController) DeleteTranscript(ctx *gin.Context) {
	sessionID := auth.GetSessionID(ctx)
	deleted, err := c.assistant.ClearTranscript(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("erro ao apagar transcrição", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to delete history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Chat history deleted successfully", gin.H{"deleted": deleted}))
}
