package file

import (
	"context"
)

// Repository define as operações de persistência para arquivos
type Repository interface {
	// Create persiste um novo arquivo, preenchendo ID e datas
	Create(ctx context.Context, f *File) error

	// FindByFilename busca um arquivo pelo nome exato
	FindByFilename(ctx context.Context, filename string) (*File, error)

	// UpdateSize atualiza o tamanho e a data de alteração
	UpdateSize(ctx context.Context, filename string, size int64) (*File, error)

	// Delete remove um arquivo pelo nome
	Delete(ctx context.Context, filename string) error

	// DeleteMany remove vários arquivos pelo nome
	DeleteMany(ctx context.Context, filenames []string) (int64, error)

	// Search busca arquivos cujo nome contém o termo, mais recentes primeiro
	Search(ctx context.Context, query string) ([]*File, error)

	// List retorna todos os arquivos, mais recentes primeiro
	List(ctx context.Context) ([]*File, error)

	// Stats resume os arquivos armazenados
	Stats(ctx context.Context) (*Stats, error)
}
