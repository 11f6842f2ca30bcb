package mail

import (
	"context"
	"errors"

	gomail "github.com/wneessen/go-mail"

	"github.com/hugohenrick/virtual-assistant/internal/config"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// ErrNotConfigured indica que o servidor SMTP não foi configurado
var ErrNotConfigured = errors.New("smtp is not configured")

// SendError é uma falha de envio com um motivo que pode ser mostrado ao usuário
type SendError struct {
	Reason string
	Err    error
}

func (e *SendError) Error() string {
	return e.Reason + ": " + e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// Reason traduz um erro de envio para a mensagem devolvida ao usuário
func Reason(err error) string {
	var sendErr *SendError
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "Email service is not configured"
	case errors.As(err, &sendErr):
		return sendErr.Error()
	}
	return err.Error()
}

// Sender envia uma mensagem de texto simples
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender envia emails por SMTP com STARTTLS obrigatório e autenticação
type SMTPSender struct {
	cfg    config.SMTPConfig
	logger logger.Logger
}

// NewSMTPSender cria um novo SMTPSender
func NewSMTPSender(cfg config.SMTPConfig, log logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: log}
}

// Send monta a mensagem e entrega ao servidor configurado
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.FromEmail == "" {
		return ErrNotConfigured
	}

	msg, err := s.buildMessage(to, subject, body)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(s.cfg.Timeout))
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return &SendError{Reason: "Could not set up the SMTP client", Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Error("Falha no envio SMTP", "to", to, "host", s.cfg.Host, "error", err)
		return &SendError{Reason: "SMTP delivery failed", Err: err}
	}

	s.logger.Info("Email enviado", "to", to, "subject", subject)
	return nil
}

func (s *SMTPSender) buildMessage(to, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.cfg.FromName, s.cfg.FromEmail); err != nil {
		return nil, &SendError{Reason: "Invalid sender address", Err: err}
	}
	if err := msg.To(to); err != nil {
		return nil, &SendError{Reason: "Invalid recipient address", Err: err}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}
