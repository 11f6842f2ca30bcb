package dto

import "time"

// SessionResponse devolve uma nova sessão com o seu token de acesso
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Welcome   string    `json:"welcome"`
}

// RefreshRequest representa a renovação do token de uma sessão
type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}
