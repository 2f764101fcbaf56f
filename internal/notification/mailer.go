package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	tagConfirmation = "confirm-email"
	tagResetLink    = "reset-password"
)

var _ model.Notifier = (*Mailer)(nil)

// Mailer renders auth notifications and hands them to an EmailSender.
type Mailer struct {
	sender EmailSender
	logger *logger.Logger
}

func NewMailer(sender EmailSender, l *logger.Logger) *Mailer {
	return &Mailer{
		sender: sender,
		logger: l,
	}
}

func (m *Mailer) SendConfirmationCode(ctx context.Context, toEmail, code string) error {
	return m.send(ctx, toEmail, "Confirm your email", tagConfirmation, "confirm_email.html", struct{ Code string }{code})
}

func (m *Mailer) SendResetLink(ctx context.Context, toEmail, url string) error {
	return m.send(ctx, toEmail, "Reset your password", tagResetLink, "reset_password.html", struct{ URL string }{url})
}

func (m *Mailer) send(ctx context.Context, to, subject, tag, name string, data any) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	err := m.sender.SendEmail(ctx, Message{
		To:       to,
		Subject:  subject,
		BodyHTML: body.String(),
		Tag:      tag,
	})
	if err != nil {
		m.logger.Error("Mailer: failed to send email", "to", to, "tag", tag, "error", err.Error())
		return fmt.Errorf("failed to send %s email: %w", tag, err)
	}

	m.logger.Debug("Mailer: email sent", "to", to, "tag", tag)
	return nil
}
