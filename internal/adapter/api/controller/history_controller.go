package controller

import (
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// HistoryController consulta o histórico de comandos e as estatísticas
type HistoryController struct {
	history history.Repository
	files   file.Repository
	emails  email.Repository
	logger  logger.Logger
}

// NewHistoryController cria uma nova instância de HistoryController
func NewHistoryController(historyRepo history.Repository, fileRepo file.Repository, emailRepo email.Repository, logger logger.Logger) *HistoryController {
	return &HistoryController{
		history: historyRepo,
		files:   fileRepo,
		emails:  emailRepo,
		logger:  logger,
	}
}

// List lista o histórico de comandos
// @Summary Histórico de comandos
// @Description Lista os comandos despachados, dos mais recentes para os mais antigos
// @Tags history
// @Produce json
// @Param limit query int false "Limite (máximo 100)"
// @Param offset query int false "Deslocamento"
// @Param action query string false "Tipo de comando"
// @Param status query string false "success ou error"
// @Param session_id query string false "Sessão"
// @Success 200 {object} dto.SuccessResponse{data=dto.HistoryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [get]
func (c *HistoryController) List(ctx *gin.Context) {
	var q dto.HistoryQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	filter := q.ToFilter()
	entries, err := c.history.List(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error("erro ao listar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}

	total, err := c.history.Count(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao contar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.HistoryResponse{
		History: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}))
}

// Delete remove uma entrada do histórico
// @Summary Remover entrada
// @Description Remove uma entrada do histórico pelo ID
// @Tags history
// @Produce json
// @Param id path int true "ID da entrada"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history/{id} [delete]
func (c *HistoryController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", "id must be a positive integer"))
		return
	}

	deleted, err := c.history.Delete(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error("erro ao remover entrada do histórico", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to delete entry", err.Error()))
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Entry not found", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Entry deleted", nil))
}

// Clear apaga todo o histórico
// @Summary Limpar histórico
// @Description Remove todas as entradas do histórico
// @Tags history
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [delete]
func (c *HistoryController) Clear(ctx *gin.Context) {
	if err := c.history.Clear(ctx.Request.Context()); err != nil {
		c.logger.Error("erro ao limpar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to clear history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("History cleared", nil))
}

// Stats resume arquivos, comandos e emails
// @Summary Estatísticas
// @Description Retorna o painel de estatísticas do assistente
// @Tags history
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.StatsResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats [get]
func (c *HistoryController) Stats(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	fileStats, err := c.files.Stats(reqCtx)
	if err != nil {
		c.statsError(ctx, err)
		return
	}
	commandStats, err := c.history.Stats(reqCtx)
	if err != nil {
		c.statsError(ctx, err)
		return
	}
	emailStats, err := c.emails.Stats(reqCtx)
	if err != nil {
		c.statsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.StatsResponse{
		Files: dto.FileStatsResponse{
			Total:     fileStats.Total,
			TotalSize: fileStats.TotalSize,
			SizeHuman: humanize.IBytes(uint64(fileStats.TotalSize)),
			Types:     fileStats.Types,
		},
		Commands: dto.CommandStatsResponse{
			Total:      commandStats.Total,
			Successful: commandStats.Successful,
			Failed:     commandStats.Failed,
		},
		Emails:             *emailStats,
		RecentActivity:     commandStats.Recent,
		FileTypes:          fileStats.Distribution,
		ActionDistribution: commandStats.Distribution,
	}))
}

func (c *HistoryController) statsError(ctx *gin.Context, err error) {
	c.logger.Error("erro ao calcular estatísticas", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load statistics", err.Error()))
}
