package core

import (
	"bytes"
	"net/mail"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

type (
	Attachment struct {
		Content     *bytes.Buffer
		ContentType string
		Filename    string
	}

	EmailMessage struct {
		To          []mail.Address
		Cc          []mail.Address
		Bcc         []mail.Address
		Subject     string
		BodyStr     string
		BodyTmpl    *texttmpl.Template
		TmplData    interface{}
		TextContent string
		Attachments []Attachment
	}

	// EmailService sends messages out-of-band; implementations must not block the caller.
	EmailService interface {
		SendMessages(messages ...*EmailMessage)
	}
)

// Render resolves the message body: a literal BodyStr wins, otherwise
// BodyTmpl is executed with TmplData.
func (m *EmailMessage) Render() error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	}
	if m.BodyTmpl == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := m.BodyTmpl.Execute(&buf, m.TmplData); err != nil {
		return errors.Wrap(err, "executing email template "+m.BodyTmpl.Name())
	}
	m.TextContent = buf.String()
	return nil
}

func (m *EmailMessage) HasRecipients() bool {
	return (len(m.To) + len(m.Cc) + len(m.Bcc)) > 0
}

func (m *EmailMessage) HasContent() bool {
	return m.TextContent != "" || m.BodyStr != "" || m.BodyTmpl != nil
}

func (m *EmailMessage) HasAttachments() bool {
	return len(m.Attachments) > 0
}
