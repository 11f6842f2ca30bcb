package email

import (
	"context"
)

// Repository define as operações de persistência para o registro de emails
type Repository interface {
	// Create registra uma tentativa de envio, preenchendo ID e data
	Create(ctx context.Context, e *Email) error

	// List retorna os envios mais recentes
	List(ctx context.Context, limit int) ([]*Email, error)

	// Stats resume os envios
	Stats(ctx context.Context) (*Stats, error)
}
