package chat

import (
	"context"
)

// Repository define as operações sobre a transcrição das sessões
type Repository interface {
	// SaveMessage salva uma nova mensagem na transcrição
	SaveMessage(ctx context.Context, message *Message) error

	// GetSessionHistory retorna as mensagens de uma sessão em ordem cronológica
	GetSessionHistory(ctx context.Context, sessionID string, limit, offset int) ([]Message, error)

	// DeleteSessionHistory remove toda a transcrição de uma sessão
	DeleteSessionHistory(ctx context.Context, sessionID string) (int64, error)

	// CountSessionMessages conta as mensagens de uma sessão
	CountSessionMessages(ctx context.Context, sessionID string) (int, error)
}
