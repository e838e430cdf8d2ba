package smtp

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"

	"print4me/internal/config"
	"print4me/internal/domain"
	"print4me/internal/email/mime"
	"print4me/internal/port"
)

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 465
)

// Transport is the resolved SMTP relay a sender dials.
type Transport struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
}

// ResolveTransport picks explicit SMTP settings when complete, otherwise the
// Gmail app-password account. ok is false when neither is configured.
func ResolveTransport(smtpCfg config.SMTPConfig, gmail config.GmailConfig) (Transport, bool) {
	if smtpCfg.Configured() {
		return Transport{
			Host:     smtpCfg.Host,
			Port:     smtpCfg.Port,
			Username: smtpCfg.User,
			Password: smtpCfg.Password,
			SSL:      smtpCfg.Secure,
		}, true
	}
	if gmail.Configured() {
		return Transport{
			Host:     gmailHost,
			Port:     gmailPort,
			Username: gmail.User,
			Password: gmail.AppPassword,
			SSL:      true,
		}, true
	}
	return Transport{}, false
}

type smtpSender struct {
	transport  Transport
	configured bool
	from       mime.Sender
	timeout    time.Duration
}

// NewSMTPSender creates an SMTP-backed EmailSender. Missing credentials are
// reported by Send, not here.
func NewSMTPSender(cfg *config.Config) port.EmailSender {
	transport, ok := ResolveTransport(cfg.SMTP, cfg.Gmail)
	return &smtpSender{
		transport:  transport,
		configured: ok,
		from:       mime.Sender{Address: cfg.SenderAddress(), Name: cfg.Email.FromName},
		timeout:    cfg.Email.SendTimeout,
	}
}

func (s *smtpSender) Send(ctx context.Context, msg port.EmailMessage) error {
	if !s.configured {
		return domain.ErrEmailNotConfigured
	}

	m, err := mime.Build(s.from, msg)
	if err != nil {
		return fmt.Errorf("building message: %w", err)
	}

	opts := []mail.Option{
		mail.WithPort(s.transport.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.transport.Username),
		mail.WithPassword(s.transport.Password),
	}
	if s.transport.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}

	client, err := mail.NewClient(s.transport.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating SMTP client for %s: %w", s.transport.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("SMTP send via %s:%d: %w", s.transport.Host, s.transport.Port, err)
	}
	log.Printf("smtpSender.Send: delivered %q to %s via %s", msg.Subject, msg.To, s.transport.Host)
	return nil
}
