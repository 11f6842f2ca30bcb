package history

import (
	"context"
)

// Repository define as operações de persistência para o histórico de comandos
type Repository interface {
	// Create registra um comando, preenchendo ID e data
	Create(ctx context.Context, e *Entry) error

	// List retorna entradas filtradas, mais recentes primeiro
	List(ctx context.Context, filter Filter) ([]*Entry, error)

	// Count retorna o total de entradas sem filtros
	Count(ctx context.Context) (int64, error)

	// Delete remove uma entrada; false quando ela não existe
	Delete(ctx context.Context, id int64) (bool, error)

	// Clear remove todo o histórico
	Clear(ctx context.Context) error

	// Stats resume o histórico
	Stats(ctx context.Context) (*Stats, error)
}
