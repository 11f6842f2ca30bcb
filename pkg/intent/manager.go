package intent

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/virtual-assistant/pkg/chat"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

var (
	// ErrEmptyMessage indica uma mensagem vazia
	ErrEmptyMessage = errors.New("message is empty")
	// ErrEmptySession indica que o ID da sessão não foi informado
	ErrEmptySession = errors.New("session id is required")
	// ErrEmptyFilename indica que o nome do arquivo não foi informado
	ErrEmptyFilename = errors.New("filename is required")
)

// IntentManager processa os turnos de cada sessão: classifica mensagens,
// conduz as conversas de coleta de dados e despacha as ações completas.
type IntentManager struct {
	// Executa as ações nos colaboradores externos
	dispatcher *Dispatcher

	// Estado de conversa de cada sessão
	sessions *SessionStore

	// Transcrição das sessões (opcional)
	transcript chat.Repository

	// Logger para registrar eventos e erros
	logger logger.Logger
}

// NewIntentManager cria uma nova instância do gerenciador de intenções.
// transcript pode ser nil.
func NewIntentManager(dispatcher *Dispatcher, transcript chat.Repository, log logger.Logger) *IntentManager {
	return &IntentManager{
		dispatcher: dispatcher,
		sessions:   NewSessionStore(),
		transcript: transcript,
		logger:     log,
	}
}

// ProcessMessage processa um turno da sessão. Turnos da mesma sessão são
// serializados e uma ação confirmada é concluída antes do próximo turno.
func (m *IntentManager) ProcessMessage(ctx context.Context, sessionID, message string) (*ActionResult, error) {
	message = strings.TrimSpace(message)
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	sess := m.sessions.acquire(sessionID)
	defer sess.mu.Unlock()

	m.logger.Info("Processing message",
		"session_id", sessionID,
		"message", message,
		"has_active_conversation", sess.state.Active)

	m.appendTranscript(ctx, sessionID, chat.RoleUser, message)

	var result *ActionResult
	if sess.state.Active {
		m.logger.Debug("Found active conversation",
			"session_id", sessionID,
			"kind", sess.state.Kind,
			"step", sess.state.Step)

		next, effect := Advance(sess.state, message)
		result = m.apply(ctx, sessionID, sess, next, effect)
	} else {
		classification := Classify(message)
		m.logger.Info("Intent detected", "session_id", sessionID, "intent", classification.Intent)

		result = m.handle(ctx, sessionID, sess, classification)
		result.Intent = classification.Intent
	}

	return m.finish(ctx, sessionID, sess, result), nil
}

// SaveEditor grava o conteúdo enviado pela superfície de edição
func (m *IntentManager) SaveEditor(ctx context.Context, sessionID, filename, content string) (*ActionResult, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if strings.TrimSpace(filename) == "" {
		return nil, ErrEmptyFilename
	}

	sess := m.sessions.acquire(sessionID)
	defer sess.mu.Unlock()

	m.logger.Info("Saving editor content", "session_id", sessionID, "filename", filename)

	result := m.dispatcher.Dispatch(ctx, sessionID, Action{
		Kind:     ActionUpdateFile,
		Filename: filename,
		Content:  content,
	})

	return m.finish(ctx, sessionID, sess, result), nil
}

// ResetSession descarta a conversa em andamento, como ao trocar de chat
func (m *IntentManager) ResetSession(sessionID string) {
	sess := m.sessions.acquire(sessionID)
	defer sess.mu.Unlock()

	if sess.state.Active {
		m.logger.Info("Resetting conversation", "session_id", sessionID, "kind", sess.state.Kind)
	}
	sess.state = EmptyState()
}

// Session retorna o estado atual da conversa da sessão
func (m *IntentManager) Session(sessionID string) ConversationState {
	return m.sessions.Snapshot(sessionID)
}

// PruneSessions remove sessões ociosas da memória
func (m *IntentManager) PruneSessions(maxIdle time.Duration) int {
	removed := m.sessions.Prune(maxIdle)
	if removed > 0 {
		m.logger.Debug("Idle sessions pruned", "removed", removed)
	}
	return removed
}

// Transcript retorna a transcrição da sessão
func (m *IntentManager) Transcript(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	if m.transcript == nil {
		return []chat.Message{}, nil
	}
	return m.transcript.GetSessionHistory(ctx, sessionID, limit, offset)
}

// ClearTranscript remove a transcrição da sessão e descarta a conversa em andamento
func (m *IntentManager) ClearTranscript(ctx context.Context, sessionID string) (int64, error) {
	m.ResetSession(sessionID)
	if m.transcript == nil {
		return 0, nil
	}
	return m.transcript.DeleteSessionHistory(ctx, sessionID)
}

// handle trata uma mensagem classificada fora de uma conversa
func (m *IntentManager) handle(ctx context.Context, sessionID string, sess *session, c Classification) *ActionResult {
	switch c.Intent {
	case IntentHelp:
		return &ActionResult{Success: true, Message: HelpMessage}

	case IntentEmail:
		return m.start(ctx, sessionID, sess, ConversationEmail, nil)

	case IntentCreate:
		return m.start(ctx, sessionID, sess, ConversationCreateFile, nil)

	case IntentEdit:
		return m.start(ctx, sessionID, sess, ConversationEditFile, prefill(c.Filename))

	case IntentRead:
		if c.Filename != "" {
			return m.dispatcher.Dispatch(ctx, sessionID, Action{Kind: ActionReadFile, Filename: c.Filename})
		}
		return m.start(ctx, sessionID, sess, ConversationReadFile, nil)

	case IntentDelete:
		return m.start(ctx, sessionID, sess, ConversationDeleteFile, prefill(c.Filename))

	case IntentSearch:
		return m.dispatcher.Dispatch(ctx, sessionID, Action{Kind: ActionSearchFiles, Query: c.Query})
	}

	return &ActionResult{Success: false, Message: UnknownMessage(c.Raw)}
}

func (m *IntentManager) start(ctx context.Context, sessionID string, sess *session, kind ConversationKind, prefilled map[string]string) *ActionResult {
	m.logger.Info("Starting conversation", "session_id", sessionID, "kind", kind, "prefilled", len(prefilled) > 0)

	state, effect := Start(kind, prefilled)
	return m.apply(ctx, sessionID, sess, state, effect)
}

// apply grava o novo estado e converte o efeito da transição em resultado.
// O estado é gravado antes do despacho: uma falha do colaborador não
// reabre a conversa.
func (m *IntentManager) apply(ctx context.Context, sessionID string, sess *session, next ConversationState, effect Effect) *ActionResult {
	sess.state = next

	switch effect.Kind {
	case EffectDispatch:
		return m.dispatcher.Dispatch(ctx, sessionID, *effect.Action)
	case EffectReprompt:
		return &ActionResult{Success: false, Message: effect.Message}
	case EffectCancelled, EffectAborted:
		m.logger.Info("Conversation ended without dispatch", "session_id", sessionID, "effect", effect.Kind)
		return &ActionResult{Success: true, Message: effect.Message}
	case EffectIdle:
		return &ActionResult{Success: false, Message: effect.Message}
	}

	return &ActionResult{Success: true, Message: effect.Message}
}

func (m *IntentManager) finish(ctx context.Context, sessionID string, sess *session, result *ActionResult) *ActionResult {
	result.Conversation = sess.state
	result.OperationID = uuid.New().String()

	m.appendTranscript(ctx, sessionID, chat.RoleAssistant, result.Message)
	return result
}

func (m *IntentManager) appendTranscript(ctx context.Context, sessionID, role, content string) {
	if m.transcript == nil {
		return
	}
	msg := &chat.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if err := m.transcript.SaveMessage(ctx, msg); err != nil {
		m.logger.Warn("Failed to save transcript message", "session_id", sessionID, "role", role, "error", err)
	}
}

func prefill(filename string) map[string]string {
	if filename == "" {
		return nil
	}
	return map[string]string{SlotFilename: filename}
}
