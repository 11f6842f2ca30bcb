package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"

	// SessionIDKey é a chave usada no contexto do Gin
	SessionIDKey = "session_id"
)

// SetSessionIDContext define o ID da sessão no contexto
func SetSessionIDContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionIDFromContext obtém o ID da sessão do contexto
func GetSessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// GetSessionID obtém o ID da sessão autenticada de um contexto do Gin
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
