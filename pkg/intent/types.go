package intent

import (
	"context"
	"time"
)

// ActionKind identifica a chamada feita a um colaborador externo
type ActionKind string

const (
	ActionCreateFile  ActionKind = "create"
	ActionReadFile    ActionKind = "read"
	ActionOpenEditor  ActionKind = "open_editor"
	ActionUpdateFile  ActionKind = "edit"
	ActionDeleteFile  ActionKind = "delete"
	ActionSearchFiles ActionKind = "search"
	ActionListFiles   ActionKind = "list"
	ActionSendEmail   ActionKind = "email"
)

// Action é uma operação completa, pronta para ser despachada
type Action struct {
	Kind     ActionKind `json:"kind"`
	Filename string     `json:"filename,omitempty"`
	Content  string     `json:"content,omitempty"`
	Append   bool       `json:"append,omitempty"`
	Query    string     `json:"query,omitempty"`
	To       string     `json:"to,omitempty"`
	Subject  string     `json:"subject,omitempty"`
	Body     string     `json:"body,omitempty"`
}

// ActionResult representa o resultado de um turno devolvido ao usuário
type ActionResult struct {
	// Sucesso ou falha da operação
	Success bool `json:"success"`

	// Mensagem para o usuário
	Message string `json:"message"`

	// Intenção classificada no turno (vazia durante uma conversa)
	Intent Intent `json:"intent,omitempty"`

	// Conteúdo lido de um arquivo
	Content string `json:"content,omitempty"`

	// Arquivos encontrados por uma busca
	Files []FileInfo `json:"files,omitempty"`

	// Arquivo aberto no editor, quando a ação for open_editor
	Editor *EditorPayload `json:"editor,omitempty"`

	// Estado da conversa após o turno
	Conversation ConversationState `json:"conversation"`

	// ID da operação (para auditoria)
	OperationID string `json:"operation_id,omitempty"`
}

// EditorPayload entrega o conteúdo atual do arquivo para a superfície de edição
type EditorPayload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Outcome é o envelope comum a todos os colaboradores
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FileInfo descreve um arquivo armazenado
type FileInfo struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileResult é o resultado de create, update e delete
type FileResult struct {
	Outcome
	File *FileInfo `json:"file,omitempty"`
}

// ReadResult é o resultado de read
type ReadResult struct {
	Outcome
	Content string    `json:"content"`
	File    *FileInfo `json:"file,omitempty"`
}

// ListResult é o resultado de search e list
type ListResult struct {
	Outcome
	Files []FileInfo `json:"files"`
	Query string     `json:"query,omitempty"`
}

// MailResult é o resultado do envio de email
type MailResult struct {
	Outcome
	EmailID int64  `json:"email_id,omitempty"`
	To      string `json:"to,omitempty"`
}

// FileStore é o colaborador de armazenamento de arquivos. Um erro retornado
// significa que o colaborador não pôde ser alcançado; falhas de negócio
// voltam com Success=false.
type FileStore interface {
	Create(ctx context.Context, filename, content string) (FileResult, error)
	Read(ctx context.Context, filename string) (ReadResult, error)
	Update(ctx context.Context, filename, content string, appendContent bool) (FileResult, error)
	Delete(ctx context.Context, filename string) (FileResult, error)
	Search(ctx context.Context, query string) (ListResult, error)
	List(ctx context.Context) (ListResult, error)
}

// Mailer é o colaborador de envio de email. O destinatário já chega validado.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) (MailResult, error)
}

// HistoryRecorder registra cada comando despachado
type HistoryRecorder interface {
	Record(ctx context.Context, sessionID string, action Action, success bool) error
}
