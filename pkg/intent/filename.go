package intent

import (
	"regexp"
	"strings"
)

var filenamePattern = regexp.MustCompile(`[a-zA-Z0-9_\-]+\.[a-zA-Z0-9]+`)

// ExtractFilename procura tokens no formato "nome.extensao" e retorna o
// último encontrado, já que o nome do arquivo costuma aparecer no fim da frase.
func ExtractFilename(input string) (string, bool) {
	matches := filenamePattern.FindAllString(input, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1], true
}

// IsBareFilename verifica se a entrada é composta apenas por um nome de arquivo
func IsBareFilename(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	filename, ok := ExtractFilename(trimmed)
	if !ok || filename != trimmed {
		return "", false
	}
	return filename, true
}
