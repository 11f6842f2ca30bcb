package intent

import (
	"regexp"
	"strings"
)

var searchQueryPattern = regexp.MustCompile(`(?i)(?:search|find|dhundo|talash|khojo)\s+(?:file\s+)?(?:for\s+)?([^\s]+)?`)

// Classification é o resultado da classificação de uma mensagem
type Classification struct {
	Intent Intent `json:"intent"`

	// Filename é o nome de arquivo pré-preenchido (edit, read, delete)
	Filename string `json:"filename,omitempty"`

	// Query é o termo de busca (search)
	Query string `json:"query,omitempty"`

	// Raw é a mensagem original, já sem espaços nas pontas
	Raw string `json:"raw"`
}

// Classify identifica a intenção de uma mensagem. As intenções são testadas
// na ordem de ClassificationOrder e a primeira que casar vence. É uma função
// pura da entrada e do vocabulário estático.
func Classify(input string) Classification {
	raw := strings.TrimSpace(input)
	result := Classification{Intent: IntentUnknown, Raw: raw}

	for _, candidate := range ClassificationOrder {
		if !Matches(raw, candidate) {
			continue
		}

		result.Intent = candidate
		switch candidate {
		case IntentEdit, IntentRead, IntentDelete:
			if filename, ok := ExtractFilename(raw); ok {
				result.Filename = filename
			}
		case IntentSearch:
			result.Query = extractSearchQuery(raw)
		}
		return result
	}

	// Um nome de arquivo sozinho é tratado como pedido de edição
	if filename, ok := IsBareFilename(raw); ok {
		result.Intent = IntentEdit
		result.Filename = filename
	}

	return result
}

// extractSearchQuery remove o verbo de busca e usa o token seguinte como
// termo. Se o token também for uma frase gatilho de busca, a consulta fica vazia.
func extractSearchQuery(input string) string {
	match := searchQueryPattern.FindStringSubmatch(input)
	if len(match) < 2 || match[1] == "" {
		return ""
	}
	if isTriggerPhrase(match[1], IntentSearch) {
		return ""
	}
	return match[1]
}
