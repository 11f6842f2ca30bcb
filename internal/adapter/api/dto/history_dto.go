package dto

import (
	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
)

// HistoryQuery representa os filtros da listagem do histórico
type HistoryQuery struct {
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
	Action  string `form:"action"`
	Status  string `form:"status" binding:"omitempty,oneof=success error"`
	Session string `form:"session_id"`
}

// ToFilter converte a consulta para o filtro do repositório
func (q HistoryQuery) ToFilter() history.Filter {
	p := GetPagination(q.Limit, q.Offset, history.DefaultLimit, history.MaxLimit)
	return history.Filter{
		SessionID: q.Session,
		Action:    q.Action,
		Status:    q.Status,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
}

// HistoryResponse representa uma página do histórico. Total ignora os filtros.
type HistoryResponse struct {
	History []*history.Entry `json:"history"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// FileStatsResponse resume os arquivos
type FileStatsResponse struct {
	Total     int64  `json:"total"`
	TotalSize int64  `json:"total_size"`
	SizeHuman string `json:"total_size_human"`
	Types     int64  `json:"types"`
}

// CommandStatsResponse resume os comandos
type CommandStatsResponse struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
}

// StatsResponse representa o painel de estatísticas
type StatsResponse struct {
	Files              FileStatsResponse     `json:"files"`
	Commands           CommandStatsResponse  `json:"commands"`
	Emails             email.Stats           `json:"emails"`
	RecentActivity     []*history.Entry      `json:"recent_activity"`
	FileTypes          []file.TypeCount      `json:"file_types"`
	ActionDistribution []history.ActionCount `json:"action_distribution"`
}
