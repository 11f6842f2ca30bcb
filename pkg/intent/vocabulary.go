package intent

import "strings"

// Intent é o propósito classificado de uma mensagem do usuário
type Intent string

const (
	IntentCreate  Intent = "create"
	IntentRead    Intent = "read"
	IntentEdit    Intent = "edit"
	IntentDelete  Intent = "delete"
	IntentSearch  Intent = "search"
	IntentEmail   Intent = "email"
	IntentHelp    Intent = "help"
	IntentCancel  Intent = "cancel"
	IntentConfirm Intent = "confirm"
	IntentUnknown Intent = "unknown"
)

// ClassificationOrder é a ordem de prioridade usada pelo classificador.
// A primeira intenção cujo vocabulário casar com a entrada vence, mesmo que
// outras intenções também casem.
var ClassificationOrder = []Intent{
	IntentHelp,
	IntentEmail,
	IntentCreate,
	IntentEdit,
	IntentRead,
	IntentDelete,
	IntentSearch,
}

// Vocabulary mapeia cada intenção para suas frases gatilho, em inglês e em
// urdu romanizado. Todas as frases estão em minúsculas. Não deve ser alterado
// em tempo de execução.
var Vocabulary = map[Intent][]string{
	IntentEmail: {
		"send email", "email", "compose email", "write email", "mail",
		"email bhejo", "mail bhejo", "email karo", "mail karo",
		"email bhejna", "mail bhejna", "email likhna", "mail likhna",
		"email bhej do", "mail bhej do", "email kar do", "mail kar do",
		"email send karo", "mail send karo", "email bna do", "mail bna do",
	},
	IntentCreate: {
		"create file", "new file", "make file", "create", "add file",
		"file banao", "file bnao", "nayi file", "naya file", "file bna do",
		"file create karo", "file banado", "nayi file banao", "naya file bnao",
		"file banayen", "file bnaye", "create kar do", "file add karo",
	},
	IntentRead: {
		"read file", "open file", "show file", "view file", "display file",
		"file dikhao", "file dikha do", "file kholao", "file kholo",
		"file parho", "file parhao", "file dekho", "file dekhao",
		"file open karo", "file read karo", "file show karo",
	},
	IntentEdit: {
		"edit file", "update file", "modify file", "change file",
		"file edit karo", "file update karo", "file badlo", "file tabdeel karo",
		"file mein tabdeeli", "file modify karo", "file change karo",
		"file ko edit karo", "file ko badlo", "file mein change karo",
	},
	IntentDelete: {
		"delete file", "remove file", "erase file", "delete",
		"file delete karo", "file hatao", "file mitao", "file remove karo",
		"file khatam karo", "file hata do", "file mita do", "file delete kar do",
		"file ko hatao", "file ko mitao", "delete kar do",
	},
	IntentSearch: {
		"search", "find file", "list files", "search file", "find",
		"file dhundo", "file talash karo", "file khojo", "files dikhao",
		"file search karo", "file find karo", "sari files", "all files",
		"file dhundho", "dhundo file", "khojo file",
	},
	IntentHelp: {
		"help", "commands", "what can you do", "options",
		"madad", "help karo", "madad karo", "kya kar sakte ho",
		"commands dikhao", "options dikhao", "help chahiye", "madad chahiye",
	},
	IntentCancel: {
		"cancel", "stop", "exit", "quit", "nevermind", "never mind", "abort",
		"band karo", "ruko", "rok do", "cancel karo", "mat karo", "rehne do",
		"choro", "chor do", "nahi chahiye", "khatam karo",
	},
	// Os verbos das próprias ações ("send", "create", "delete", "save")
	// também contam como confirmação.
	IntentConfirm: {
		"yes", "ok", "okay", "confirm", "sure", "send", "create", "delete", "save",
		"haan", "han", "theek hai", "thik hai", "bilkul", "zaroor", "kar do",
		"bhej do", "bana do", "hata do", "save karo", "confirm karo", "ji haan", "ji",
	},
}

// Matches informa se a entrada contém alguma frase gatilho da intenção.
// A comparação ignora maiúsculas e é feita por substring, sem respeitar
// limites de palavra: "ji" casa dentro de "jinn".
func Matches(input string, in Intent) bool {
	lowered := strings.ToLower(strings.TrimSpace(input))
	for _, phrase := range Vocabulary[in] {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// IsCancel verifica se a entrada pede o cancelamento da operação em curso
func IsCancel(input string) bool {
	return Matches(input, IntentCancel)
}

// IsConfirm verifica se a entrada confirma a operação pendente
func IsConfirm(input string) bool {
	return Matches(input, IntentConfirm)
}

// isTriggerPhrase verifica se o token é exatamente uma frase gatilho da intenção
func isTriggerPhrase(token string, in Intent) bool {
	lowered := strings.ToLower(token)
	for _, phrase := range Vocabulary[in] {
		if lowered == phrase {
			return true
		}
	}
	return false
}
