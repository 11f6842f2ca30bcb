package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/mail"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

func TestMailAdapter_Send(t *testing.T) {
	sender := &fakeSender{}
	repo := &memoryEmailRepo{}
	a := NewMailAdapter(sender, repo, logger.NewNopLogger())

	res, err := a.Send(context.Background(), "john@example.com", "Hi", "Hello there")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Email sent successfully to john@example.com", res.Message)
	assert.Equal(t, int64(1), res.EmailID)
	assert.Equal(t, []string{"john@example.com"}, sender.sent)

	require.Len(t, repo.emails, 1)
	assert.Equal(t, email.StatusSent, repo.emails[0].Status)
}

func TestMailAdapter_Validation(t *testing.T) {
	tests := []struct {
		name    string
		to      string
		subject string
		body    string
		want    string
	}{
		{"missing recipient", "", "s", "b", "Recipient email is required."},
		{"missing subject", "a@b.com", " ", "b", "Email subject is required."},
		{"missing body", "a@b.com", "s", "", "Email message is required."},
		{"invalid recipient", "not-an-email", "s", "b", "Invalid email address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			repo := &memoryEmailRepo{}
			a := NewMailAdapter(sender, repo, logger.NewNopLogger())

			res, err := a.Send(context.Background(), tt.to, tt.subject, tt.body)
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Message)
			assert.Empty(t, sender.sent)
			assert.Empty(t, repo.emails)
		})
	}
}

func TestMailAdapter_SendFailureIsLogged(t *testing.T) {
	sender := &fakeSender{err: errors.New("SMTP connection failed")}
	repo := &memoryEmailRepo{}
	a := NewMailAdapter(sender, repo, logger.NewNopLogger())

	res, err := a.Send(context.Background(), "john@example.com", "Hi", "Hello")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "SMTP connection failed", res.Message)

	require.Len(t, repo.emails, 1)
	assert.Equal(t, email.StatusFailed, repo.emails[0].Status)
	assert.Equal(t, "SMTP connection failed", repo.emails[0].ErrorMessage)
}

func TestMailAdapter_SendFailureReasonIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "delivery failure keeps the smtp cause",
			err:  &mail.SendError{Reason: "SMTP delivery failed", Err: errors.New("535 authentication failed")},
			want: "SMTP delivery failed: 535 authentication failed",
		},
		{
			name: "missing smtp configuration",
			err:  mail.ErrNotConfigured,
			want: "Email service is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewMailAdapter(&fakeSender{err: tt.err}, &memoryEmailRepo{}, logger.NewNopLogger())

			res, err := a.Send(context.Background(), "john@example.com", "Hi", "Hello")
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Message)
		})
	}
}

func TestMailAdapter_LogFailureDoesNotFailSend(t *testing.T) {
	sender := &fakeSender{}
	repo := &memoryEmailRepo{err: errDatabaseDown}
	a := NewMailAdapter(sender, repo, logger.NewNopLogger())

	res, err := a.Send(context.Background(), "john@example.com", "Hi", "Hello")
	require.NoError(t, err)
	assert.True(t, res.Success)
}
