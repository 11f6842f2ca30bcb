package dto

import (
	"strings"

	"github.com/hugohenrick/virtual-assistant/internal/domain/contact"
)

// ContactRequest representa o formulário de contato
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ToContact converte a requisição para a entidade
func (r ContactRequest) ToContact() *contact.Contact {
	return &contact.Contact{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

// ContactResponse representa um contato registrado
type ContactResponse struct {
	ID int64 `json:"id"`
}
