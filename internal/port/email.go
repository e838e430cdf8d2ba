package port

import "context"

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// EmailMessage is a fully rendered email.
type EmailMessage struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
