package dto

import (
	"time"

	"github.com/hugohenrick/virtual-assistant/pkg/chat"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
)

// MessageRequest representa uma mensagem enviada ao assistente
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// EditorSaveRequest representa o salvamento feito pela tela de edição
type EditorSaveRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content"`
}

// AssistantResponse é o resultado de um turno do assistente
type AssistantResponse struct {
	Success      bool                     `json:"success"`
	Message      string                   `json:"message"`
	Intent       intent.Intent            `json:"intent,omitempty"`
	Content      string                   `json:"content,omitempty"`
	Files        []intent.FileInfo        `json:"files,omitempty"`
	Editor       *intent.EditorPayload    `json:"editor,omitempty"`
	Conversation intent.ConversationState `json:"conversation"`
	OperationID  string                   `json:"operation_id,omitempty"`
}

// ToAssistantResponse converte o resultado do turno
func ToAssistantResponse(r *intent.ActionResult) AssistantResponse {
	return AssistantResponse{
		Success:      r.Success,
		Message:      r.Message,
		Intent:       r.Intent,
		Content:      r.Content,
		Files:        r.Files,
		Editor:       r.Editor,
		Conversation: r.Conversation,
		OperationID:  r.OperationID,
	}
}

// TranscriptMessage é uma mensagem da transcrição da sessão
type TranscriptMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TranscriptResponse representa a transcrição paginada de uma sessão
type TranscriptResponse struct {
	SessionID string              `json:"session_id"`
	Messages  []TranscriptMessage `json:"messages"`
	Limit     int                 `json:"limit"`
	Offset    int                 `json:"offset"`
}

// ToTranscriptResponse converte as mensagens da sessão
func ToTranscriptResponse(sessionID string, messages []chat.Message, p Pagination) TranscriptResponse {
	out := make([]TranscriptMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, TranscriptMessage{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return TranscriptResponse{
		SessionID: sessionID,
		Messages:  out,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
}

// SessionStateResponse representa o estado da conversa de uma sessão
type SessionStateResponse struct {
	SessionID    string                   `json:"session_id"`
	Conversation intent.ConversationState `json:"conversation"`
}
