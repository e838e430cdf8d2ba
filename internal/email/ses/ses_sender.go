package ses

import (
	"context"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"print4me/internal/email/mime"
	"print4me/internal/port"
)

// SendEmailAPI is the subset of the SESv2 client used by the sender.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesSender struct {
	client SendEmailAPI
	from   mime.Sender
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return NewSESSenderWithClient(sesv2.NewFromConfig(cfg), fromAddress, fromName), nil
}

// NewSESSenderWithClient wraps an existing SESv2 client.
func NewSESSenderWithClient(client SendEmailAPI, fromAddress, fromName string) port.EmailSender {
	return &sesSender{
		client: client,
		from:   mime.Sender{Address: fromAddress, Name: fromName},
	}
}

// Send renders msg as raw MIME so attachments survive, then hands it to SES.
func (s *sesSender) Send(ctx context.Context, msg port.EmailMessage) error {
	raw, err := mime.Render(s.from, msg)
	if err != nil {
		return fmt.Errorf("rendering message: %w", err)
	}

	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	if out != nil && out.MessageId != nil {
		log.Printf("sesSender.Send: delivered %q to %s (message %s)", msg.Subject, msg.To, *out.MessageId)
	}
	return nil
}
