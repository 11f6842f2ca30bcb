package adapter

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/mail"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// MailAdapter implementa intent.Mailer. Toda tentativa de envio fica
// registrada na tabela de emails, com sucesso ou não.
type MailAdapter struct {
	sender   mail.Sender
	repo     email.Repository
	validate *validator.Validate
	logger   logger.Logger
}

// NewMailAdapter cria um novo MailAdapter
func NewMailAdapter(sender mail.Sender, repo email.Repository, log logger.Logger) *MailAdapter {
	return &MailAdapter{
		sender:   sender,
		repo:     repo,
		validate: validator.New(),
		logger:   log,
	}
}

// Send valida e envia o email
func (a *MailAdapter) Send(ctx context.Context, to, subject, body string) (intent.MailResult, error) {
	to = strings.TrimSpace(to)
	switch {
	case to == "":
		return mailFailure("Recipient email is required."), nil
	case strings.TrimSpace(subject) == "":
		return mailFailure("Email subject is required."), nil
	case strings.TrimSpace(body) == "":
		return mailFailure("Email message is required."), nil
	}

	if err := a.validate.Var(to, "email"); err != nil {
		return mailFailure("Invalid email address."), nil
	}

	record := &email.Email{
		Recipient: to,
		Subject:   subject,
		Message:   body,
		Status:    email.StatusSent,
	}

	sendErr := a.sender.Send(ctx, to, subject, body)
	if sendErr != nil {
		record.Status = email.StatusFailed
		record.ErrorMessage = sendErr.Error()
	}

	if err := a.repo.Create(ctx, record); err != nil {
		a.logger.Warn("Failed to log email", "to", to, "error", err)
	}

	if sendErr != nil {
		a.logger.Error("Failed to send email", "to", to, "error", sendErr)
		return intent.MailResult{Outcome: failure(mail.Reason(sendErr)), To: to}, nil
	}

	return intent.MailResult{
		Outcome: intent.Outcome{Success: true, Message: "Email sent successfully to " + to},
		EmailID: record.ID,
		To:      to,
	}, nil
}

func mailFailure(msg string) intent.MailResult {
	return intent.MailResult{Outcome: failure(msg)}
}
