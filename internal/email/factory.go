// Package email selects the EmailSender implementation for the configured provider.
package email

import (
	"fmt"

	"print4me/internal/config"
	"print4me/internal/email/noop"
	"print4me/internal/email/ses"
	"print4me/internal/email/smtp"
	"print4me/internal/port"
)

// NewSender returns the EmailSender for cfg.Email.Provider.
func NewSender(cfg *config.Config) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "", "smtp":
		return smtp.NewSMTPSender(cfg), nil
	case "ses":
		return ses.NewSESSender(cfg.Email.Region, cfg.SenderAddress(), cfg.Email.FromName)
	case "noop":
		return noop.NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.Email.Provider)
	}
}
