package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// MessageBackendUnreachable é devolvida quando um colaborador não responde
const MessageBackendUnreachable = "Cannot reach the backend. Please make sure the server is running and try again."

// Dispatcher executa ações completas nos colaboradores externos e formata
// o resultado para o usuário. Não há novas tentativas: uma falha encerra a
// operação e o usuário precisa emitir o comando outra vez.
type Dispatcher struct {
	files   FileStore
	mailer  Mailer
	history HistoryRecorder
	logger  logger.Logger
}

// NewDispatcher cria um novo Dispatcher. history pode ser nil.
func NewDispatcher(files FileStore, mailer Mailer, history HistoryRecorder, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		files:   files,
		mailer:  mailer,
		history: history,
		logger:  log,
	}
}

// Dispatch executa a ação e devolve o resultado formatado
func (d *Dispatcher) Dispatch(ctx context.Context, sessionID string, action Action) *ActionResult {
	d.logger.Info("Dispatching action", "session_id", sessionID, "action", action.Kind, "filename", action.Filename)

	result, err := d.dispatch(ctx, action)
	if err != nil {
		d.logger.Error("Collaborator unreachable", "action", action.Kind, "error", err)
		result = &ActionResult{Success: false, Message: MessageBackendUnreachable}
	}

	d.record(ctx, sessionID, action, result.Success)
	return result
}

func (d *Dispatcher) dispatch(ctx context.Context, action Action) (*ActionResult, error) {
	switch action.Kind {
	case ActionCreateFile:
		res, err := d.files.Create(ctx, action.Filename, action.Content)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure("Failed to create file: " + res.Message), nil
		}
		name := action.Filename
		if res.File != nil {
			name = res.File.Filename
		}
		return &ActionResult{Success: true, Message: fmt.Sprintf("File %s created successfully!", name)}, nil

	case ActionReadFile:
		res, err := d.files.Read(ctx, action.Filename)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure("Could not read file: " + res.Message), nil
		}
		shown := res.Content
		if shown == "" {
			shown = "(Empty file)"
		}
		return &ActionResult{
			Success: true,
			Message: fmt.Sprintf("Here's the content of %s:\n%s", action.Filename, shown),
			Content: res.Content,
		}, nil

	case ActionOpenEditor:
		res, err := d.files.Read(ctx, action.Filename)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure(fmt.Sprintf("Could not open %s for editing: %s", action.Filename, res.Message)), nil
		}
		return &ActionResult{
			Success: true,
			Message: fmt.Sprintf(`File %s loaded in the editor. Make your changes and click "Save Changes".`, action.Filename),
			Editor:  &EditorPayload{Filename: action.Filename, Content: res.Content},
		}, nil

	case ActionUpdateFile:
		res, err := d.files.Update(ctx, action.Filename, action.Content, action.Append)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure("Failed to update file: " + res.Message), nil
		}
		return &ActionResult{Success: true, Message: fmt.Sprintf("File %s updated successfully!", action.Filename)}, nil

	case ActionDeleteFile:
		res, err := d.files.Delete(ctx, action.Filename)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure("Failed to delete file: " + res.Message), nil
		}
		return &ActionResult{Success: true, Message: fmt.Sprintf("File %s deleted successfully!", action.Filename)}, nil

	case ActionSearchFiles, ActionListFiles:
		var (
			res ListResult
			err error
		)
		if action.Kind == ActionListFiles {
			res, err = d.files.List(ctx)
		} else {
			res, err = d.files.Search(ctx, action.Query)
		}
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure(res.Message), nil
		}
		return formatFileList(action.Query, res.Files), nil

	case ActionSendEmail:
		res, err := d.mailer.Send(ctx, action.To, action.Subject, action.Body)
		if err != nil {
			return nil, err
		}
		if !res.Success {
			return failure("Failed to send email: " + res.Message), nil
		}
		return &ActionResult{Success: true, Message: fmt.Sprintf("Email sent successfully to %s!", action.To)}, nil
	}

	return failure(fmt.Sprintf("Unsupported action: %s", action.Kind)), nil
}

// formatFileList monta a resposta de uma busca. Sem resultados, a mensagem
// diferencia a ausência de termo de busca de um termo sem correspondência.
func formatFileList(query string, files []FileInfo) *ActionResult {
	if len(files) == 0 {
		msg := "No files found."
		if query != "" {
			msg = fmt.Sprintf("No files found matching %q.", query)
		}
		return &ActionResult{Success: true, Message: msg, Files: []FileInfo{}}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d file(s):", len(files))
	for _, f := range files {
		fmt.Fprintf(&b, "\n- %s (%s)", f.Filename, humanize.IBytes(uint64(f.Size)))
	}

	return &ActionResult{Success: true, Message: b.String(), Files: files}
}

func (d *Dispatcher) record(ctx context.Context, sessionID string, action Action, success bool) {
	if d.history == nil {
		return
	}
	if err := d.history.Record(ctx, sessionID, action, success); err != nil {
		d.logger.Warn("Failed to record command history", "action", action.Kind, "error", err)
	}
}

func failure(msg string) *ActionResult {
	return &ActionResult{Success: false, Message: msg}
}
