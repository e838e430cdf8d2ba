package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print4me/internal/config"
	"print4me/internal/domain"
	"print4me/internal/email"
	"print4me/internal/port"
)

func TestNewSender_Noop(t *testing.T) {
	cfg := &config.Config{Email: config.EmailConfig{Provider: "noop"}}

	sender, err := email.NewSender(cfg)
	require.NoError(t, err)

	assert.NoError(t, sender.Send(context.Background(), port.EmailMessage{To: "admin@print4me.app", Subject: "x"}))
}

func TestNewSender_SMTPWithoutCredentials(t *testing.T) {
	sender, err := email.NewSender(&config.Config{})
	require.NoError(t, err)

	err = sender.Send(context.Background(), port.EmailMessage{To: "admin@print4me.app", Subject: "x"})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfigured)
}

func TestNewSender_UnknownProvider(t *testing.T) {
	_, err := email.NewSender(&config.Config{Email: config.EmailConfig{Provider: "pigeon"}})
	assert.Error(t, err)
}
