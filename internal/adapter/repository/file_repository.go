package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrFileNotFound     = file.ErrNotFound
	ErrFileDuplicateKey = file.ErrAlreadyExists
)

const fileColumns = `id, filename, filepath, size, mime_type, created_at, updated_at`

// PostgresFileRepository implementa a interface file.Repository usando PostgreSQL
type PostgresFileRepository struct {
	db *database.PostgresDB
}

// NewPostgresFileRepository cria uma nova instância de PostgresFileRepository
func NewPostgresFileRepository(db *database.PostgresDB) *PostgresFileRepository {
	return &PostgresFileRepository{db: db}
}

// Create implementa file.Repository.Create
func (r *PostgresFileRepository) Create(ctx context.Context, f *file.File) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO files (filename, filepath, size, mime_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err = conn.QueryRow(ctx, query, f.Filename, f.Filepath, f.Size, f.MimeType).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrFileDuplicateKey
		}
		return fmt.Errorf("falha ao criar arquivo: %w", err)
	}

	return nil
}

// FindByFilename implementa file.Repository.FindByFilename
func (r *PostgresFileRepository) FindByFilename(ctx context.Context, filename string) (*file.File, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `SELECT `+fileColumns+` FROM files WHERE filename = $1`, filename)
	f, err := scanFile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("falha ao buscar arquivo: %w", err)
	}

	return f, nil
}

// UpdateSize implementa file.Repository.UpdateSize
func (r *PostgresFileRepository) UpdateSize(ctx context.Context, filename string, size int64) (*file.File, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE files SET size = $1, updated_at = NOW()
		WHERE filename = $2
		RETURNING ` + fileColumns

	f, err := scanFile(conn.QueryRow(ctx, query, size, filename))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("falha ao atualizar arquivo: %w", err)
	}

	return f, nil
}

// Delete implementa file.Repository.Delete
func (r *PostgresFileRepository) Delete(ctx context.Context, filename string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, `DELETE FROM files WHERE filename = $1`, filename)
	if err != nil {
		return fmt.Errorf("falha ao excluir arquivo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrFileNotFound
	}

	return nil
}

// DeleteMany implementa file.Repository.DeleteMany
func (r *PostgresFileRepository) DeleteMany(ctx context.Context, filenames []string) (int64, error) {
	if len(filenames) == 0 {
		return 0, nil
	}

	var removed int64
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM files WHERE filename = ANY($1)`, filenames)
		if err != nil {
			return fmt.Errorf("falha ao excluir arquivos: %w", err)
		}
		removed = result.RowsAffected()
		return nil
	})

	return removed, err
}

// Search implementa file.Repository.Search
func (r *PostgresFileRepository) Search(ctx context.Context, query string) ([]*file.File, error) {
	return r.list(ctx,
		`SELECT `+fileColumns+` FROM files WHERE filename ILIKE $1 ORDER BY created_at DESC`,
		"%"+escapeLike(query)+"%")
}

// List implementa file.Repository.List
func (r *PostgresFileRepository) List(ctx context.Context) ([]*file.File, error) {
	return r.list(ctx, `SELECT `+fileColumns+` FROM files ORDER BY created_at DESC`)
}

// Stats implementa file.Repository.Stats
func (r *PostgresFileRepository) Stats(ctx context.Context) (*file.Stats, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	stats := &file.Stats{Distribution: []file.TypeCount{}}
	err = conn.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(size), 0), COUNT(DISTINCT mime_type)
		FROM files
	`).Scan(&stats.Total, &stats.TotalSize, &stats.Types)
	if err != nil {
		return nil, fmt.Errorf("falha ao calcular estatísticas de arquivos: %w", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT mime_type, COUNT(*) AS count
		FROM files
		GROUP BY mime_type
		ORDER BY count DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar arquivos por tipo: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc file.TypeCount
		if err := rows.Scan(&tc.MimeType, &tc.Count); err != nil {
			return nil, fmt.Errorf("falha ao ler tipo de arquivo: %w", err)
		}
		stats.Distribution = append(stats.Distribution, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return stats, nil
}

func (r *PostgresFileRepository) list(ctx context.Context, query string, args ...interface{}) ([]*file.File, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar arquivos: %w", err)
	}
	defer rows.Close()

	files := make([]*file.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler arquivo: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return files, nil
}

func scanFile(row pgx.Row) (*file.File, error) {
	var f file.File
	err := row.Scan(&f.ID, &f.Filename, &f.Filepath, &f.Size, &f.MimeType, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
