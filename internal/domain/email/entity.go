package email

import (
	"time"
)

// Status representa a situação de um envio
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Email é o registro de uma tentativa de envio
type Email struct {
	ID           int64     `json:"id"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Status       Status    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats resume os envios
type Stats struct {
	Total  int64 `json:"total"`
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
}
