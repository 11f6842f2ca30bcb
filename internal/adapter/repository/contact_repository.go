package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/virtual-assistant/internal/domain/contact"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
)

// PostgresContactRepository implementa a interface contact.Repository usando PostgreSQL
type PostgresContactRepository struct {
	db *database.PostgresDB
}

// NewPostgresContactRepository cria uma nova instância de PostgresContactRepository
func NewPostgresContactRepository(db *database.PostgresDB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

// Create implementa contact.Repository.Create
func (r *PostgresContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	err = conn.QueryRow(ctx, `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.Name, c.Email, c.Subject, c.Message).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar contato: %w", err)
	}

	return nil
}

// List implementa contact.Repository.List
func (r *PostgresContactRepository) List(ctx context.Context, limit, offset int) ([]*contact.Contact, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, name, email, COALESCE(subject, ''), message, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar contatos: %w", err)
	}
	defer rows.Close()

	contacts := make([]*contact.Contact, 0)
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler contato: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return contacts, nil
}
