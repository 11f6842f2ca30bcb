package adapter

import (
	"context"

	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
)

// HistoryRecorder implementa intent.HistoryRecorder sobre o repositório de histórico
type HistoryRecorder struct {
	repo history.Repository
}

// NewHistoryRecorder cria um novo HistoryRecorder
func NewHistoryRecorder(repo history.Repository) *HistoryRecorder {
	return &HistoryRecorder{repo: repo}
}

// Record grava a ação despachada com o seu resultado
func (r *HistoryRecorder) Record(ctx context.Context, sessionID string, action intent.Action, success bool) error {
	result := history.ResultSuccess
	if !success {
		result = history.ResultError
	}

	return r.repo.Create(ctx, &history.Entry{
		SessionID:   sessionID,
		CommandType: string(action.Kind),
		CommandData: commandData(action),
		Result:      result,
	})
}

// commandData guarda apenas os campos preenchidos da ação
func commandData(action intent.Action) map[string]interface{} {
	data := map[string]interface{}{}
	set := func(key, value string) {
		if value != "" {
			data[key] = value
		}
	}
	set("filename", action.Filename)
	set("content", action.Content)
	set("query", action.Query)
	set("to", action.To)
	set("subject", action.Subject)
	set("message", action.Body)
	if action.Append {
		data["append"] = true
	}
	return data
}
