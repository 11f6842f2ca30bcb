package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/storage"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// Mensagens devolvidas ao usuário pelo armazenamento
const (
	msgFilenameRequired = "Filename is required."
	msgInvalidFilename  = "Invalid filename. Please use only letters, numbers, underscores, hyphens, and dots."
	msgDuplicate        = "A file with this name already exists. Try a different name or use edit to modify the existing file."
	msgDiskCleanedUp    = "File not found on disk. Database has been cleaned up."
)

// Storage é o armazenamento em disco usado pelo adaptador
type Storage interface {
	Path(filename string) string
	Exists(filename string) bool
	Write(filename, content string) (int64, error)
	Read(filename string) (string, error)
	Append(filename, content string) (int64, error)
	Remove(filename string) error
}

// FileStoreAdapter implementa intent.FileStore sobre o repositório de
// arquivos e o disco. O banco guarda os metadados e o disco o conteúdo.
type FileStoreAdapter struct {
	repo   file.Repository
	disk   Storage
	logger logger.Logger
}

// NewFileStoreAdapter cria um novo FileStoreAdapter
func NewFileStoreAdapter(repo file.Repository, disk Storage, log logger.Logger) *FileStoreAdapter {
	return &FileStoreAdapter{
		repo:   repo,
		disk:   disk,
		logger: log,
	}
}

// Create grava um novo arquivo no disco e registra seus metadados
func (a *FileStoreAdapter) Create(ctx context.Context, filename, content string) (intent.FileResult, error) {
	name, err := file.SanitizeFilename(filename)
	if err != nil {
		if errors.Is(err, file.ErrEmptyFilename) {
			return fileFailure(msgFilenameRequired), nil
		}
		return fileFailure(msgInvalidFilename), nil
	}

	existing, err := a.repo.FindByFilename(ctx, name)
	if err != nil && !errors.Is(err, file.ErrNotFound) {
		return intent.FileResult{}, err
	}
	if existing != nil {
		return fileFailure(msgDuplicate), nil
	}

	size, err := a.disk.Write(name, content)
	if err != nil {
		a.logger.Error("Failed to write file", "filename", name, "error", err)
		return fileFailure("Failed to create file on disk."), nil
	}

	f := &file.File{
		Filename: name,
		Filepath: a.disk.Path(name),
		Size:     size,
		MimeType: file.MimeType(name),
	}
	if err := a.repo.Create(ctx, f); err != nil {
		// o arquivo no disco não pode ficar sem registro
		if rmErr := a.disk.Remove(name); rmErr != nil {
			a.logger.Warn("Failed to remove orphan file", "filename", name, "error", rmErr)
		}
		if errors.Is(err, file.ErrAlreadyExists) {
			return fileFailure(msgDuplicate), nil
		}
		a.logger.Error("Failed to register file", "filename", name, "error", err)
		return fileFailure("Failed to create file: " + err.Error()), nil
	}

	a.logger.Info("File created", "filename", name, "size", size)
	return intent.FileResult{
		Outcome: intent.Outcome{Success: true, Message: "File created successfully."},
		File:    toFileInfo(f),
	}, nil
}

// Read retorna o conteúdo de um arquivo. Um registro sem arquivo no disco é
// removido do banco.
func (a *FileStoreAdapter) Read(ctx context.Context, filename string) (intent.ReadResult, error) {
	if strings.TrimSpace(filename) == "" {
		return intent.ReadResult{Outcome: failure(msgFilenameRequired)}, nil
	}
	name := file.BaseName(strings.TrimSpace(filename))

	f, err := a.repo.FindByFilename(ctx, name)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return intent.ReadResult{Outcome: failure("File not found: " + name)}, nil
		}
		return intent.ReadResult{}, err
	}

	content, err := a.disk.Read(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			if delErr := a.repo.Delete(ctx, name); delErr != nil && !errors.Is(delErr, file.ErrNotFound) {
				return intent.ReadResult{}, delErr
			}
			a.logger.Warn("File missing on disk, record removed", "filename", name)
			return intent.ReadResult{Outcome: failure(msgDiskCleanedUp)}, nil
		}
		a.logger.Error("Failed to read file", "filename", name, "error", err)
		return intent.ReadResult{Outcome: failure("Failed to read file content.")}, nil
	}

	return intent.ReadResult{
		Outcome: intent.Outcome{Success: true, Message: "File read successfully."},
		Content: content,
		File:    toFileInfo(f),
	}, nil
}

// Update substitui o conteúdo ou o acrescenta em uma nova linha
func (a *FileStoreAdapter) Update(ctx context.Context, filename, content string, appendContent bool) (intent.FileResult, error) {
	if strings.TrimSpace(filename) == "" {
		return fileFailure(msgFilenameRequired), nil
	}
	name := file.BaseName(strings.TrimSpace(filename))

	if _, err := a.repo.FindByFilename(ctx, name); err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return fileFailure("File not found: " + name + ". Use create to make a new file."), nil
		}
		return intent.FileResult{}, err
	}

	if !a.disk.Exists(name) {
		return fileFailure("File not found on disk."), nil
	}

	var (
		size int64
		err  error
	)
	if appendContent {
		size, err = a.disk.Append(name, content)
	} else {
		size, err = a.disk.Write(name, content)
	}
	if err != nil {
		a.logger.Error("Failed to write file", "filename", name, "error", err)
		return fileFailure("Failed to write to file."), nil
	}

	f, err := a.repo.UpdateSize(ctx, name, size)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return fileFailure("File not found: " + name + ". Use create to make a new file."), nil
		}
		return intent.FileResult{}, err
	}

	a.logger.Info("File updated", "filename", name, "size", size, "append", appendContent)
	return intent.FileResult{
		Outcome: intent.Outcome{Success: true, Message: "File updated successfully."},
		File:    toFileInfo(f),
	}, nil
}

// Delete remove o arquivo do disco e depois do banco
func (a *FileStoreAdapter) Delete(ctx context.Context, filename string) (intent.FileResult, error) {
	if strings.TrimSpace(filename) == "" {
		return fileFailure(msgFilenameRequired), nil
	}
	name := file.BaseName(strings.TrimSpace(filename))

	f, err := a.repo.FindByFilename(ctx, name)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return fileFailure("File not found: " + name), nil
		}
		return intent.FileResult{}, err
	}

	if err := a.disk.Remove(name); err != nil {
		a.logger.Error("Failed to remove file", "filename", name, "error", err)
		return fileFailure("Failed to delete file from disk."), nil
	}

	if err := a.repo.Delete(ctx, name); err != nil && !errors.Is(err, file.ErrNotFound) {
		return intent.FileResult{}, err
	}

	a.logger.Info("File deleted", "filename", name)
	return intent.FileResult{
		Outcome: intent.Outcome{Success: true, Message: "File deleted successfully."},
		File:    toFileInfo(f),
	}, nil
}

// Search busca arquivos pelo nome; uma busca vazia lista todos
func (a *FileStoreAdapter) Search(ctx context.Context, query string) (intent.ListResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return a.List(ctx)
	}

	files, err := a.repo.Search(ctx, query)
	if err != nil {
		return intent.ListResult{}, err
	}

	infos := toFileInfos(a.pruneMissing(ctx, files))
	return intent.ListResult{
		Outcome: intent.Outcome{Success: true, Message: countMessage(len(infos))},
		Files:   infos,
		Query:   query,
	}, nil
}

// List retorna todos os arquivos, removendo registros cujo arquivo sumiu do disco
func (a *FileStoreAdapter) List(ctx context.Context) (intent.ListResult, error) {
	files, err := a.repo.List(ctx)
	if err != nil {
		return intent.ListResult{}, err
	}

	infos := toFileInfos(a.pruneMissing(ctx, files))
	return intent.ListResult{
		Outcome: intent.Outcome{Success: true, Message: countMessage(len(infos))},
		Files:   infos,
	}, nil
}

// pruneMissing descarta os registros cujo arquivo sumiu do disco
func (a *FileStoreAdapter) pruneMissing(ctx context.Context, files []*file.File) []*file.File {
	valid := make([]*file.File, 0, len(files))
	var missing []string
	for _, f := range files {
		if a.disk.Exists(f.Filename) {
			valid = append(valid, f)
		} else {
			missing = append(missing, f.Filename)
		}
	}

	if len(missing) > 0 {
		removed, err := a.repo.DeleteMany(ctx, missing)
		if err != nil {
			a.logger.Warn("Failed to prune missing files", "count", len(missing), "error", err)
		} else {
			a.logger.Info("Pruned records of missing files", "count", removed)
		}
	}
	return valid
}

func countMessage(n int) string {
	return fmt.Sprintf("%d file(s) found.", n)
}

func failure(msg string) intent.Outcome {
	return intent.Outcome{Success: false, Message: msg}
}

func fileFailure(msg string) intent.FileResult {
	return intent.FileResult{Outcome: failure(msg)}
}

func toFileInfo(f *file.File) *intent.FileInfo {
	if f == nil {
		return nil
	}
	return &intent.FileInfo{
		ID:        f.ID,
		Filename:  f.Filename,
		Size:      f.Size,
		MimeType:  f.MimeType,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toFileInfos(files []*file.File) []intent.FileInfo {
	infos := make([]intent.FileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, *toFileInfo(f))
	}
	return infos
}
