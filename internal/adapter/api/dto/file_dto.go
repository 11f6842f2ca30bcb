package dto

import "github.com/hugohenrick/virtual-assistant/pkg/intent"

// FileCreateRequest representa a criação de um arquivo
type FileCreateRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content"`
}

// FileUpdateRequest representa a alteração do conteúdo de um arquivo
type FileUpdateRequest struct {
	Content string `json:"content"`
	Append  bool   `json:"append"`
}

// FileContentResponse representa um arquivo lido
type FileContentResponse struct {
	File    *intent.FileInfo `json:"file,omitempty"`
	Content string           `json:"content"`
}

// FileListResponse representa o resultado de uma busca ou listagem
type FileListResponse struct {
	Files []intent.FileInfo `json:"files"`
	Query string            `json:"query,omitempty"`
	Total int               `json:"total"`
}
