package smtp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"print4me/internal/config"
	"print4me/internal/domain"
	"print4me/internal/email/smtp"
	"print4me/internal/port"
)

func TestResolveTransport_PrefersSMTP(t *testing.T) {
	tr, ok := smtp.ResolveTransport(
		config.SMTPConfig{Host: "mail.example.com", Port: 587, User: "u", Password: "p"},
		config.GmailConfig{User: "g@gmail.com", AppPassword: "app"},
	)

	assert.True(t, ok)
	assert.Equal(t, "mail.example.com", tr.Host)
	assert.Equal(t, 587, tr.Port)
	assert.False(t, tr.SSL)
}

func TestResolveTransport_GmailFallback(t *testing.T) {
	tr, ok := smtp.ResolveTransport(
		config.SMTPConfig{Host: "mail.example.com"},
		config.GmailConfig{User: "g@gmail.com", AppPassword: "app"},
	)

	assert.True(t, ok)
	assert.Equal(t, "smtp.gmail.com", tr.Host)
	assert.Equal(t, 465, tr.Port)
	assert.Equal(t, "g@gmail.com", tr.Username)
	assert.True(t, tr.SSL)
}

func TestResolveTransport_NothingConfigured(t *testing.T) {
	_, ok := smtp.ResolveTransport(config.SMTPConfig{}, config.GmailConfig{})
	assert.False(t, ok)
}

func TestSend_NotConfigured(t *testing.T) {
	sender := smtp.NewSMTPSender(&config.Config{})

	err := sender.Send(context.Background(), port.EmailMessage{To: "admin@print4me.app", Subject: "x"})

	assert.ErrorIs(t, err, domain.ErrEmailNotConfigured)
}
