package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica se uma dependência está acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController informa a situação do serviço
type HealthController struct {
	db      Pinger
	started time.Time
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db, started: time.Now()}
}

// Check verifica o serviço e o banco
// @Summary Health check
// @Description Verifica se o serviço e o banco de dados estão disponíveis
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status, code, database := "ok", http.StatusOK, "up"
	if h.db != nil {
		if err := h.db.Ping(pingCtx); err != nil {
			status, code, database = "degraded", http.StatusServiceUnavailable, "down"
		}
	}

	ctx.JSON(code, gin.H{
		"status":   status,
		"database": database,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
