package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
)

// ErrNotExist indica que o arquivo não existe no diretório de uploads
var ErrNotExist = errors.New("file does not exist on disk")

// Disk guarda o conteúdo dos arquivos em um único diretório. Apenas o nome
// base é usado, então nenhum caminho escapa da raiz.
type Disk struct {
	root string
}

// NewDisk cria o diretório raiz caso ele não exista
func NewDisk(root string) (*Disk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver diretório de uploads: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de uploads: %w", err)
	}
	return &Disk{root: abs}, nil
}

// Root retorna o diretório raiz
func (d *Disk) Root() string {
	return d.root
}

// Path retorna o caminho completo de um arquivo
func (d *Disk) Path(filename string) string {
	return filepath.Join(d.root, file.BaseName(filename))
}

// Exists verifica se o arquivo está no disco
func (d *Disk) Exists(filename string) bool {
	info, err := os.Stat(d.Path(filename))
	return err == nil && !info.IsDir()
}

// Write grava o conteúdo, substituindo o arquivo existente, e retorna o tamanho
func (d *Disk) Write(filename, content string) (int64, error) {
	if err := os.WriteFile(d.Path(filename), []byte(content), 0o644); err != nil {
		return 0, fmt.Errorf("erro ao gravar %s: %w", filename, err)
	}
	return int64(len(content)), nil
}

// Read retorna o conteúdo do arquivo
func (d *Disk) Read(filename string) (string, error) {
	data, err := os.ReadFile(d.Path(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotExist
		}
		return "", fmt.Errorf("erro ao ler %s: %w", filename, err)
	}
	return string(data), nil
}

// Remove apaga o arquivo; um arquivo ausente não é erro
func (d *Disk) Remove(filename string) error {
	if err := os.Remove(d.Path(filename)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erro ao remover %s: %w", filename, err)
	}
	return nil
}

// Append acrescenta o conteúdo em uma nova linha e retorna o tamanho final
func (d *Disk) Append(filename, content string) (int64, error) {
	existing, err := d.Read(filename)
	if err != nil {
		return 0, err
	}
	return d.Write(filename, existing+"\n"+content)
}
