package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// ConversationKind identifica o fluxo de coleta de dados em andamento
type ConversationKind string

const (
	ConversationEmail      ConversationKind = "email"
	ConversationCreateFile ConversationKind = "create_file"
	ConversationEditFile   ConversationKind = "edit_file"
	ConversationDeleteFile ConversationKind = "delete_file"
	ConversationReadFile   ConversationKind = "read_file"
)

// Nomes dos slots coletados pelos fluxos
const (
	SlotRecipient = "recipient"
	SlotSubject   = "subject"
	SlotBody      = "body"
	SlotExtension = "extension"
	SlotName      = "name"
	SlotContent   = "content"
	SlotFilename  = "filename"
)

// AllowedExtensions são as extensões aceitas na criação de arquivos pela conversa
var AllowedExtensions = []string{"txt", "md", "json", "html", "css", "js", "xml", "csv", "log", "php", "py"}

var (
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	filenameShape       = regexp.MustCompile(`^.+\.[a-zA-Z0-9]+$`)
	disallowedNameChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
)

// Slot é um dado nomeado coletado durante a conversa
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Slots guarda os slots na ordem em que foram coletados
type Slots []Slot

// Get retorna o valor de um slot
func (s Slots) Get(name string) (string, bool) {
	for _, slot := range s {
		if slot.Name == name {
			return slot.Value, true
		}
	}
	return "", false
}

// Value retorna o valor de um slot ou string vazia
func (s Slots) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Names retorna os nomes dos slots na ordem de coleta
func (s Slots) Names() []string {
	names := make([]string, len(s))
	for i, slot := range s {
		names[i] = slot.Name
	}
	return names
}

// with retorna uma cópia com o slot adicionado, sem compartilhar o array
func (s Slots) with(name, value string) Slots {
	out := make(Slots, len(s), len(s)+1)
	copy(out, s)
	return append(out, Slot{Name: name, Value: value})
}

// ConversationState é o estado da conversa de uma sessão. Quando inativo,
// Step é zero e não há slots. Enquanto ativo, Step indica o próximo slot a
// coletar, começando em 1.
type ConversationState struct {
	Active bool             `json:"active"`
	Kind   ConversationKind `json:"kind,omitempty"`
	Step   int              `json:"step"`
	Slots  Slots            `json:"slots,omitempty"`
}

// EmptyState retorna o estado inativo
func EmptyState() ConversationState {
	return ConversationState{}
}

// EffectKind descreve o que uma transição produziu
type EffectKind string

const (
	// EffectPrompt pede o próximo slot
	EffectPrompt EffectKind = "prompt"
	// EffectReprompt rejeita a entrada e pede o mesmo slot novamente
	EffectReprompt EffectKind = "reprompt"
	// EffectCancelled indica cancelamento pelo vocabulário de cancelamento
	EffectCancelled EffectKind = "cancelled"
	// EffectAborted indica que a confirmação final não foi dada
	EffectAborted EffectKind = "aborted"
	// EffectDispatch indica que a ação está pronta para execução
	EffectDispatch EffectKind = "dispatch"
	// EffectIdle indica que não havia conversa ativa
	EffectIdle EffectKind = "idle"
)

// Effect é o resultado de uma transição do estado da conversa
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Message string     `json:"message,omitempty"`
	Action  *Action    `json:"action,omitempty"`
}

// validationError é a explicação devolvida ao usuário quando um slot é rejeitado
type validationError string

func (e validationError) Error() string { return string(e) }

type step struct {
	slot     string
	confirm  bool
	ask      func(slots Slots) string
	validate func(input string, slots Slots) (string, error)
}

type flow struct {
	steps        []step
	complete     func(slots Slots) Action
	abortMessage string
}

const confirmHint = `Type "yes" or "haan" to %s, or "cancel" to abort.`

var flows = map[ConversationKind]flow{
	ConversationEmail: {
		steps: []step{
			{
				slot: SlotRecipient,
				ask: func(Slots) string {
					return "I'll help you send an email. First, please enter the recipient's email address:"
				},
				validate: validateRecipient,
			},
			{
				slot: SlotSubject,
				ask: func(Slots) string {
					return "Got it! Now, what should the subject of the email be?"
				},
				validate: validateNotEmpty("The subject cannot be empty. What should the subject of the email be?"),
			},
			{
				slot: SlotBody,
				ask: func(Slots) string {
					return "Perfect! Now, please type the message content you want to send:"
				},
				validate: validateNotEmpty("The message cannot be empty. Please type the message content you want to send:"),
			},
			{
				confirm: true,
				ask: func(s Slots) string {
					return fmt.Sprintf("Great! Here's a summary of your email:\nTo: %s\nSubject: %s\nMessage: %s\n"+confirmHint,
						s.Value(SlotRecipient), s.Value(SlotSubject), s.Value(SlotBody), "send this email")
				},
			},
		},
		complete: func(s Slots) Action {
			return Action{
				Kind:    ActionSendEmail,
				To:      s.Value(SlotRecipient),
				Subject: s.Value(SlotSubject),
				Body:    s.Value(SlotBody),
			}
		},
		abortMessage: "Email cancelled. How can I help you?",
	},
	ConversationCreateFile: {
		steps: []step{
			{
				slot: SlotExtension,
				ask: func(Slots) string {
					return "I'll help you create a new file. First, what file extension would you like?\nSupported: " +
						strings.Join(AllowedExtensions, ", ")
				},
				validate: validateExtension,
			},
			{
				slot: SlotName,
				ask: func(Slots) string {
					return "Good! Now, what would you like to name this file? (without the extension)"
				},
				validate: validateName,
			},
			{
				slot: SlotContent,
				ask: func(s Slots) string {
					return fmt.Sprintf(`The file will be named %s. Now, please enter the content for the file (or type "empty" for an empty file):`,
						createFilename(s))
				},
				validate: validateContent,
			},
			{
				confirm: true,
				ask: func(s Slots) string {
					return fmt.Sprintf("Ready to create the file:\nFilename: %s\nContent: %s\n"+confirmHint,
						createFilename(s), contentPreview(s.Value(SlotContent)), "create this file")
				},
			},
		},
		complete: func(s Slots) Action {
			return Action{
				Kind:     ActionCreateFile,
				Filename: createFilename(s),
				Content:  s.Value(SlotContent),
			}
		},
		abortMessage: "File creation cancelled. How can I help you?",
	},
	ConversationEditFile: {
		steps: []step{
			{
				slot: SlotFilename,
				ask: func(Slots) string {
					return "Which file would you like to edit? Please enter the filename with extension (e.g., report.txt):"
				},
				validate: validateFilenameShape,
			},
		},
		complete: func(s Slots) Action {
			return Action{Kind: ActionOpenEditor, Filename: s.Value(SlotFilename)}
		},
	},
	ConversationDeleteFile: {
		steps: []step{
			{
				slot: SlotFilename,
				ask: func(Slots) string {
					return "Which file would you like to delete? Please enter the filename:"
				},
				validate: validateNotEmpty("Please enter the filename you want to delete:"),
			},
			{
				confirm: true,
				ask: func(s Slots) string {
					return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.\n"+confirmHint,
						s.Value(SlotFilename), "confirm deletion")
				},
			},
		},
		complete: func(s Slots) Action {
			return Action{Kind: ActionDeleteFile, Filename: s.Value(SlotFilename)}
		},
		abortMessage: "File deletion cancelled. How can I help you?",
	},
	ConversationReadFile: {
		steps: []step{
			{
				slot: SlotFilename,
				ask: func(Slots) string {
					return "Which file would you like to read? Please enter the filename (e.g., notes.txt):"
				},
				validate: validateNotEmpty("Please enter the filename you want to read:"),
			},
		},
		complete: func(s Slots) Action {
			return Action{Kind: ActionReadFile, Filename: s.Value(SlotFilename)}
		},
	},
}

// StepCount retorna o número de passos de um fluxo
func StepCount(kind ConversationKind) int {
	return len(flows[kind].steps)
}

// Start inicia uma conversa do tipo informado. Slots pré-preenchidos (por
// exemplo o nome de arquivo extraído da mensagem) passam direto pelo
// validador do passo correspondente, sem a verificação de cancelamento.
func Start(kind ConversationKind, prefilled map[string]string) (ConversationState, Effect) {
	fl, ok := flows[kind]
	if !ok {
		return EmptyState(), Effect{Kind: EffectIdle, Message: fmt.Sprintf("Unknown conversation: %s", kind)}
	}

	state := ConversationState{Active: true, Kind: kind, Step: 1}
	effect := Effect{Kind: EffectPrompt, Message: fl.steps[0].ask(state.Slots)}

	for state.Active {
		current := fl.steps[state.Step-1]
		if current.confirm {
			break
		}
		value, ok := prefilled[current.slot]
		if !ok {
			break
		}
		state, effect = accept(state, fl, value)
		if effect.Kind == EffectReprompt {
			break
		}
	}

	return state, effect
}

// Advance aplica uma entrada do usuário ao estado da conversa. O cancelamento
// é verificado antes de qualquer validação, em qualquer passo.
func Advance(state ConversationState, input string) (ConversationState, Effect) {
	input = strings.TrimSpace(input)

	if !state.Active {
		return EmptyState(), Effect{Kind: EffectIdle}
	}

	if IsCancel(input) {
		return EmptyState(), Effect{Kind: EffectCancelled, Message: "Operation cancelled. How can I help you?"}
	}

	fl, ok := flows[state.Kind]
	if !ok || state.Step < 1 || state.Step > len(fl.steps) {
		return EmptyState(), Effect{Kind: EffectAborted, Message: "Sorry, something went wrong with this conversation. Please start again."}
	}

	return accept(state, fl, input)
}

func accept(state ConversationState, fl flow, input string) (ConversationState, Effect) {
	current := fl.steps[state.Step-1]

	if current.confirm {
		if IsConfirm(input) {
			action := fl.complete(state.Slots)
			return EmptyState(), Effect{Kind: EffectDispatch, Action: &action}
		}
		return EmptyState(), Effect{Kind: EffectAborted, Message: fl.abortMessage}
	}

	value, err := current.validate(input, state.Slots)
	if err != nil {
		return state, Effect{Kind: EffectReprompt, Message: err.Error()}
	}

	next := ConversationState{
		Active: true,
		Kind:   state.Kind,
		Step:   state.Step + 1,
		Slots:  state.Slots.with(current.slot, value),
	}

	if next.Step > len(fl.steps) {
		action := fl.complete(next.Slots)
		return EmptyState(), Effect{Kind: EffectDispatch, Action: &action}
	}

	return next, Effect{Kind: EffectPrompt, Message: fl.steps[next.Step-1].ask(next.Slots)}
}

func validateRecipient(input string, _ Slots) (string, error) {
	if !emailPattern.MatchString(input) {
		return "", validationError("That doesn't look like a valid email address. Please enter a valid email address (e.g., example@gmail.com):")
	}
	return input, nil
}

func validateNotEmpty(problem string) func(string, Slots) (string, error) {
	return func(input string, _ Slots) (string, error) {
		if strings.TrimSpace(input) == "" {
			return "", validationError(problem)
		}
		return input, nil
	}
}

func validateExtension(input string, _ Slots) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(input, "."))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", validationError("That extension is not supported. Please choose one of: " + strings.Join(AllowedExtensions, ", "))
}

func validateName(input string, _ Slots) (string, error) {
	name := disallowedNameChars.ReplaceAllString(input, "")
	if name == "" {
		return "", validationError("Invalid filename. Please use only letters, numbers, underscores, and hyphens:")
	}
	return name, nil
}

func validateContent(input string, _ Slots) (string, error) {
	if strings.EqualFold(input, "empty") {
		return "", nil
	}
	return input, nil
}

func validateFilenameShape(input string, _ Slots) (string, error) {
	if !filenameShape.MatchString(input) {
		return "", validationError("Please provide the complete filename with extension (e.g., report.txt, test.js):")
	}
	return input, nil
}

func createFilename(s Slots) string {
	return s.Value(SlotName) + "." + s.Value(SlotExtension)
}

func contentPreview(content string) string {
	if content == "" {
		return "(empty)"
	}
	runes := []rune(content)
	if len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return content
}
