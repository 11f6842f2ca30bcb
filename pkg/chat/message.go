package chat

import "time"

// Papéis de uma mensagem na transcrição
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message representa uma mensagem na transcrição de uma sessão
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
