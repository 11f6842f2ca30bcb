package history

import (
	"time"
)

// Result é o desfecho de um comando
type Result string

const (
	ResultSuccess Result = "success"
	ResultError   Result = "error"
)

// MaxLimit é o maior número de entradas devolvidas por consulta
const MaxLimit = 100

// DefaultLimit é usado quando nenhum limite é informado
const DefaultLimit = 50

// Entry é um comando despachado pelo assistente
type Entry struct {
	ID          int64                  `json:"id"`
	SessionID   string                 `json:"session_id"`
	CommandType string                 `json:"action"`
	CommandData map[string]interface{} `json:"command"`
	Result      Result                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

// Filter restringe a listagem do histórico
type Filter struct {
	SessionID string
	Action    string
	Status    string
	Limit     int
	Offset    int
}

// Normalize aplica o limite padrão e o limite máximo
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// ActionCount é a quantidade de comandos de um tipo
type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

// Stats resume o histórico de comandos
type Stats struct {
	Total        int64         `json:"total"`
	Successful   int64         `json:"successful"`
	Failed       int64         `json:"failed"`
	Distribution []ActionCount `json:"action_distribution"`
	Recent       []*Entry      `json:"recent_activity"`
}
