package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/controller"
)

// RegisterFileRoutes registra as rotas do armazenamento de arquivos
func RegisterFileRoutes(r *gin.RouterGroup, fileController *controller.FileController) {
	files := r.Group("/files")
	{
		files.GET("", fileController.List)
		files.POST("", fileController.Create)
		files.GET("/:filename", fileController.Get)
		files.PUT("/:filename", fileController.Update)
		files.DELETE("/:filename", fileController.Delete)
	}
}
