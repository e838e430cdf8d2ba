package noop

import (
	"context"
	"log"

	"print4me/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs order notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) Send(_ context.Context, msg port.EmailMessage) error {
	var size int
	for _, a := range msg.Attachments {
		size += len(a.Data)
	}
	log.Printf("[NOOP EMAIL] %q to %s (%d attachments, %d bytes)", msg.Subject, msg.To, len(msg.Attachments), size)
	return nil
}
