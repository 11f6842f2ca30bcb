package file

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyFilename   = errors.New("filename is required")
	ErrInvalidFilename = errors.New("invalid filename")
	ErrNotFound        = errors.New("file not found")
	ErrAlreadyExists   = errors.New("a file with this name already exists")
)

// MaxFilenameLength é o tamanho máximo de um nome de arquivo armazenado
const MaxFilenameLength = 200

// DefaultExtension é acrescentada a nomes sem extensão aceita
const DefaultExtension = "txt"

// AllowedExtensions são as extensões de texto aceitas pelo armazenamento
var AllowedExtensions = []string{"txt", "md", "json", "html", "css", "js", "xml", "csv", "log", "php", "py"}

var (
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)
	onlyDots        = regexp.MustCompile(`^\.+$`)
)

var mimeTypes = map[string]string{
	"txt":  "text/plain",
	"md":   "text/markdown",
	"json": "application/json",
	"html": "text/html",
	"htm":  "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"xml":  "application/xml",
	"csv":  "text/csv",
	"log":  "text/plain",
	"php":  "application/x-php",
	"py":   "text/x-python",
	"sql":  "application/sql",
}

// File representa um arquivo armazenado
type File struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Filepath  string    `json:"filepath"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TypeCount é a quantidade de arquivos de um tipo MIME
type TypeCount struct {
	MimeType string `json:"type"`
	Count    int64  `json:"count"`
}

// Stats resume os arquivos armazenados
type Stats struct {
	Total        int64       `json:"total"`
	TotalSize    int64       `json:"total_size"`
	Types        int64       `json:"types"`
	Distribution []TypeCount `json:"distribution"`
}

// SanitizeFilename reduz o nome ao componente final, remove caracteres fora
// de [A-Za-z0-9_.-], limita o tamanho e acrescenta ".txt" quando a extensão
// não é aceita.
func SanitizeFilename(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyFilename
	}

	name = disallowedChars.ReplaceAllString(BaseName(name), "")
	if name == "" || onlyDots.MatchString(name) {
		return "", ErrInvalidFilename
	}

	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}

	if !IsAllowedExtension(Extension(name)) {
		name = name + "." + DefaultExtension
	}

	return name, nil
}

// BaseName remove qualquer componente de diretório do nome
func BaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return filepath.Base(filepath.Clean("/" + name))
}

// Extension retorna a extensão em minúsculas, sem o ponto
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsAllowedExtension verifica se a extensão é aceita
func IsAllowedExtension(ext string) bool {
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// MimeType retorna o tipo MIME a partir da extensão do nome
func MimeType(name string) string {
	if mt, ok := mimeTypes[Extension(name)]; ok {
		return mt
	}
	return "text/plain"
}
