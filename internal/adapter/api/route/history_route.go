package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/controller"
)

// RegisterHistoryRoutes registra o histórico de comandos e as estatísticas
func RegisterHistoryRoutes(r *gin.RouterGroup, historyController *controller.HistoryController) {
	history := r.Group("/history")
	{
		history.GET("", historyController.List)
		history.DELETE("", historyController.Clear)
		history.DELETE("/:id", historyController.Delete)
	}

	r.GET("/stats", historyController.Stats)
}

// RegisterHealthRoutes registra o health check
func RegisterHealthRoutes(r *gin.RouterGroup, healthController *controller.HealthController) {
	r.GET("/health", healthController.Check)
}
