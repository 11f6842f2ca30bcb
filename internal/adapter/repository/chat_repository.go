package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
	"github.com/hugohenrick/virtual-assistant/pkg/chat"
)

// ChatRepository guarda a transcrição das sessões
type ChatRepository struct {
	db *database.PostgresDB
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository(db *database.PostgresDB) chat.Repository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	// Se o ID da mensagem estiver vazio, gerar um novo
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err = conn.Exec(ctx, `
		INSERT INTO chat_messages (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, message.ID, message.SessionID, message.Role, message.Content, message.Timestamp)
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

func (r *ChatRepository) GetSessionHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	// limit <= 0 devolve tudo
	var limitArg interface{}
	if limit > 0 {
		limitArg = limit
	}

	rows, err := conn.Query(ctx, `
		SELECT id, role, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`, sessionID, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0)
	for rows.Next() {
		msg := chat.Message{SessionID: sessionID}
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

func (r *ChatRepository) DeleteSessionHistory(ctx context.Context, sessionID string) (int64, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, `DELETE FROM chat_messages WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("erro ao deletar histórico: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *ChatRepository) CountSessionMessages(ctx context.Context, sessionID string) (int, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var count int
	err = conn.QueryRow(ctx, `SELECT COUNT(*) FROM chat_messages WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	return count, nil
}
