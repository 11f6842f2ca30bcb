package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
)

const historyColumns = `id, session_id, command_type, command_data, result, created_at`

// PostgresHistoryRepository implementa a interface history.Repository usando PostgreSQL
type PostgresHistoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresHistoryRepository cria uma nova instância de PostgresHistoryRepository
func NewPostgresHistoryRepository(db *database.PostgresDB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// Create implementa history.Repository.Create
func (r *PostgresHistoryRepository) Create(ctx context.Context, e *history.Entry) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	data, err := json.Marshal(e.CommandData)
	if err != nil {
		return fmt.Errorf("falha ao serializar comando: %w", err)
	}

	err = conn.QueryRow(ctx, `
		INSERT INTO command_history (session_id, command_type, command_data, result)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, e.SessionID, e.CommandType, data, string(e.Result)).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao registrar comando: %w", err)
	}

	return nil
}

// List implementa history.Repository.List
func (r *PostgresHistoryRepository) List(ctx context.Context, filter history.Filter) ([]*history.Entry, error) {
	filter = filter.Normalize()

	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.SessionID != "" {
		args = append(args, filter.SessionID)
		conditions = append(conditions, fmt.Sprintf("session_id = $%d", len(args)))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		conditions = append(conditions, fmt.Sprintf("command_type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("result = $%d", len(args)))
	}
	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT %s FROM command_history
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, historyColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))

	return r.query(ctx, query, args...)
}

// Count implementa history.Repository.Count
func (r *PostgresHistoryRepository) Count(ctx context.Context) (int64, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return 0, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var total int64
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM command_history`).Scan(&total); err != nil {
		return 0, fmt.Errorf("falha ao contar histórico: %w", err)
	}
	return total, nil
}

// Delete implementa history.Repository.Delete
func (r *PostgresHistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return false, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, `DELETE FROM command_history WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("falha ao excluir entrada do histórico: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Clear implementa history.Repository.Clear
func (r *PostgresHistoryRepository) Clear(ctx context.Context) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `TRUNCATE TABLE command_history`); err != nil {
		return fmt.Errorf("falha ao limpar histórico: %w", err)
	}
	return nil
}

// Stats implementa history.Repository.Stats
func (r *PostgresHistoryRepository) Stats(ctx context.Context) (*history.Stats, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}

	stats := &history.Stats{Distribution: []history.ActionCount{}}
	err = conn.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE result = 'success'),
			COUNT(*) FILTER (WHERE result = 'error')
		FROM command_history
	`).Scan(&stats.Total, &stats.Successful, &stats.Failed)
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("falha ao calcular estatísticas de comandos: %w", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT command_type, COUNT(*) AS count
		FROM command_history
		GROUP BY command_type
		ORDER BY count DESC
	`)
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("falha ao agrupar comandos: %w", err)
	}

	for rows.Next() {
		var ac history.ActionCount
		if err := rows.Scan(&ac.Action, &ac.Count); err != nil {
			rows.Close()
			conn.Release()
			return nil, fmt.Errorf("falha ao ler comando: %w", err)
		}
		stats.Distribution = append(stats.Distribution, ac)
	}
	rows.Close()
	conn.Release()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	stats.Recent, err = r.List(ctx, history.Filter{Limit: 5})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *PostgresHistoryRepository) query(ctx context.Context, query string, args ...interface{}) ([]*history.Entry, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar histórico: %w", err)
	}
	defer rows.Close()

	entries := make([]*history.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler entrada do histórico: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return entries, nil
}

func scanEntry(row pgx.Row) (*history.Entry, error) {
	var (
		e      history.Entry
		data   []byte
		result string
	)
	if err := row.Scan(&e.ID, &e.SessionID, &e.CommandType, &data, &result, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Result = history.Result(result)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &e.CommandData); err != nil {
			return nil, fmt.Errorf("comando inválido: %w", err)
		}
	}
	return &e, nil
}
