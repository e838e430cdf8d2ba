// Package mime renders port.EmailMessage values into RFC 5322 messages.
package mime

import (
	"bytes"
	"fmt"

	"github.com/wneessen/go-mail"

	"print4me/internal/port"
)

// Sender identifies the From header of rendered messages.
type Sender struct {
	Address string
	Name    string
}

// Build converts msg into a go-mail message ready for sending.
func Build(from Sender, msg port.EmailMessage) (*mail.Msg, error) {
	m := mail.NewMsg()

	var err error
	if from.Name != "" {
		err = m.FromFormat(from.Name, from.Address)
	} else {
		err = m.From(from.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("setting sender %q: %w", from.Address, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("setting recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)

	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}

	for _, a := range msg.Attachments {
		var opts []mail.FileOption
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := m.AttachReader(a.FileName, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("attaching %s: %w", a.FileName, err)
		}
	}
	return m, nil
}

// Render builds msg and serializes it to raw MIME bytes.
func Render(from Sender, msg port.EmailMessage) ([]byte, error) {
	m, err := Build(from, msg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing message: %w", err)
	}
	return buf.Bytes(), nil
}
