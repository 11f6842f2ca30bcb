package contact

import (
	"context"
)

// Repository define as operações de persistência para contatos
type Repository interface {
	// Create persiste uma nova mensagem de contato
	Create(ctx context.Context, c *Contact) error

	// List retorna as mensagens mais recentes
	List(ctx context.Context, limit, offset int) ([]*Contact, error)
}
