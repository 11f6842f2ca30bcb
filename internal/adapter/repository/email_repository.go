package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
)

// PostgresEmailRepository implementa a interface email.Repository usando PostgreSQL
type PostgresEmailRepository struct {
	db *database.PostgresDB
}

// NewPostgresEmailRepository cria uma nova instância de PostgresEmailRepository
func NewPostgresEmailRepository(db *database.PostgresDB) *PostgresEmailRepository {
	return &PostgresEmailRepository{db: db}
}

// Create implementa email.Repository.Create
func (r *PostgresEmailRepository) Create(ctx context.Context, e *email.Email) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO emails (recipient, subject, message, status, error_message)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at
	`

	err = conn.QueryRow(ctx, query, e.Recipient, e.Subject, e.Message, string(e.Status), e.ErrorMessage).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao registrar email: %w", err)
	}

	return nil
}

// List implementa email.Repository.List
func (r *PostgresEmailRepository) List(ctx context.Context, limit int) ([]*email.Email, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, recipient, subject, message, status, COALESCE(error_message, ''), created_at
		FROM emails
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar emails: %w", err)
	}
	defer rows.Close()

	emails := make([]*email.Email, 0)
	for rows.Next() {
		var e email.Email
		var status string
		if err := rows.Scan(&e.ID, &e.Recipient, &e.Subject, &e.Message, &status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler email: %w", err)
		}
		e.Status = email.Status(status)
		emails = append(emails, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return emails, nil
}

// Stats implementa email.Repository.Stats
func (r *PostgresEmailRepository) Stats(ctx context.Context) (*email.Stats, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var stats email.Stats
	err = conn.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'sent'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM emails
	`).Scan(&stats.Total, &stats.Sent, &stats.Failed)
	if err != nil {
		return nil, fmt.Errorf("falha ao calcular estatísticas de email: %w", err)
	}

	return &stats, nil
}
