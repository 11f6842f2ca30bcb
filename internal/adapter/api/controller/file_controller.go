package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// FileController expõe o armazenamento de arquivos diretamente, sem conversa.
// Recusas do armazenamento voltam como 422 com o envelope success=false.
type FileController struct {
	files  intent.FileStore
	logger logger.Logger
}

// NewFileController cria uma nova instância de FileController
func NewFileController(files intent.FileStore, logger logger.Logger) *FileController {
	return &FileController{
		files:  files,
		logger: logger,
	}
}

// List lista ou busca arquivos
// @Summary Listar arquivos
// @Description Lista todos os arquivos ou busca pelo nome
// @Tags files
// @Produce json
// @Param search query string false "Trecho do nome"
// @Success 200 {object} dto.SuccessResponse{data=dto.FileListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /files [get]
func (c *FileController) List(ctx *gin.Context) {
	var (
		res intent.ListResult
		err error
	)
	if query := ctx.Query("search"); query != "" {
		res, err = c.files.Search(ctx.Request.Context(), query)
	} else {
		res, err = c.files.List(ctx.Request.Context())
	}
	if err != nil {
		c.backendError(ctx, "erro ao listar arquivos", err)
		return
	}

	ctx.JSON(outcomeStatus(res.Success, http.StatusOK), dto.NewOutcomeResponse(res.Success, res.Message, dto.FileListResponse{
		Files: res.Files,
		Query: res.Query,
		Total: len(res.Files),
	}))
}

// Get lê um arquivo
// @Summary Ler arquivo
// @Description Retorna o conteúdo de um arquivo
// @Tags files
// @Produce json
// @Param filename path string true "Nome do arquivo"
// @Success 200 {object} dto.SuccessResponse{data=dto.FileContentResponse}
// @Failure 422 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /files/{filename} [get]
func (c *FileController) Get(ctx *gin.Context) {
	res, err := c.files.Read(ctx.Request.Context(), ctx.Param("filename"))
	if err != nil {
		c.backendError(ctx, "erro ao ler arquivo", err)
		return
	}

	var data interface{}
	if res.Success {
		data = dto.FileContentResponse{File: res.File, Content: res.Content}
	}
	ctx.JSON(outcomeStatus(res.Success, http.StatusOK), dto.NewOutcomeResponse(res.Success, res.Message, data))
}

// Create cria um arquivo
// @Summary Criar arquivo
// @Description Cria um novo arquivo de texto
// @Tags files
// @Accept json
// @Produce json
// @Param file body dto.FileCreateRequest true "Arquivo"
// @Success 201 {object} dto.SuccessResponse{data=intent.FileInfo}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /files [post]
func (c *FileController) Create(ctx *gin.Context) {
	var req dto.FileCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	res, err := c.files.Create(ctx.Request.Context(), req.Filename, req.Content)
	if err != nil {
		c.backendError(ctx, "erro ao criar arquivo", err)
		return
	}

	c.fileOutcome(ctx, res, http.StatusCreated)
}

// Update altera o conteúdo de um arquivo
// @Summary Alterar arquivo
// @Description Substitui o conteúdo ou acrescenta ao final
// @Tags files
// @Accept json
// @Produce json
// @Param filename path string true "Nome do arquivo"
// @Param file body dto.FileUpdateRequest true "Conteúdo"
// @Success 200 {object} dto.SuccessResponse{data=intent.FileInfo}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /files/{filename} [put]
func (c *FileController) Update(ctx *gin.Context) {
	var req dto.FileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	res, err := c.files.Update(ctx.Request.Context(), ctx.Param("filename"), req.Content, req.Append)
	if err != nil {
		c.backendError(ctx, "erro ao alterar arquivo", err)
		return
	}

	c.fileOutcome(ctx, res, http.StatusOK)
}

// Delete remove um arquivo
// @Summary Remover arquivo
// @Description Remove o arquivo do disco e do banco
// @Tags files
// @Produce json
// @Param filename path string true "Nome do arquivo"
// @Success 200 {object} dto.SuccessResponse{data=intent.FileInfo}
// @Failure 422 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /files/{filename} [delete]
func (c *FileController) Delete(ctx *gin.Context) {
	res, err := c.files.Delete(ctx.Request.Context(), ctx.Param("filename"))
	if err != nil {
		c.backendError(ctx, "erro ao remover arquivo", err)
		return
	}

	c.fileOutcome(ctx, res, http.StatusOK)
}

func (c *FileController) fileOutcome(ctx *gin.Context, res intent.FileResult, okStatus int) {
	var data interface{}
	if res.File != nil {
		data = res.File
	}
	ctx.JSON(outcomeStatus(res.Success, okStatus), dto.NewOutcomeResponse(res.Success, res.Message, data))
}

func (c *FileController) backendError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, intent.MessageBackendUnreachable, err.Error()))
}

// outcomeStatus escolhe o status HTTP de um envelope de colaborador
func outcomeStatus(success bool, okStatus int) int {
	if success {
		return okStatus
	}
	return http.StatusUnprocessableEntity
}
