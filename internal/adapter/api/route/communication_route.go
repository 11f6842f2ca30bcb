package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/controller"
)

// RegisterEmailRoutes registra as rotas de envio de email
func RegisterEmailRoutes(r *gin.RouterGroup, emailController *controller.EmailController) {
	emails := r.Group("/emails")
	{
		emails.POST("", emailController.Send)
		emails.GET("", emailController.List)
	}
}

// RegisterContactRoutes registra o formulário de contato
func RegisterContactRoutes(r *gin.RouterGroup, contactController *controller.ContactController) {
	r.POST("/contact", contactController.Create)
}
