package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/controller"
	"github.com/hugohenrick/virtual-assistant/pkg/auth"
)

// RegisterSessionRoutes registra a emissão de sessões (sem autenticação)
func RegisterSessionRoutes(r *gin.RouterGroup, sessionController *controller.SessionController) {
	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionController.Create)
		sessions.POST("/refresh", sessionController.Refresh)
	}
}

// RegisterAssistantRoutes registra as rotas da conversa com o assistente
func RegisterAssistantRoutes(r *gin.RouterGroup, assistantController *controller.AssistantController, jwtService *auth.JWTService) {
	assistant := r.Group("/assistant")
	assistant.Use(auth.JWTAuthMiddleware(jwtService))
	{
		assistant.POST("/message", assistantController.ProcessMessage)
		assistant.GET("/session", assistantController.GetSession)
		assistant.DELETE("/session", assistantController.ResetSession)
		assistant.POST("/editor/save", assistantController.SaveEditor)
		assistant.GET("/history", assistantController.GetTranscript)
		assistant.DELETE("/history", assistantController.DeleteTranscript)
	}
}
