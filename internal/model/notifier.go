package model

import "context"

// Notifier delivers confirmation codes and password reset links.
type Notifier interface {
	SendConfirmationCode(ctx context.Context, toEmail, code string) error
	SendResetLink(ctx context.Context, toEmail, url string) error
}
