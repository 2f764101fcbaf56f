package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PendingSignUp is an in-flight registration waiting for its confirmation code.
type PendingSignUp struct {
	Code       string    `json:"code"`
	Password   string    `json:"password"`
	TimeToSend time.Time `json:"timeToSend"`
}

// PendingPasswordReset is an in-flight password reset waiting for completion.
type PendingPasswordReset struct {
	Token      string    `json:"token"`
	TimeToSend time.Time `json:"timeToSend"`
}

// SignupStore keeps pending registrations keyed by email.
type SignupStore interface {
	Save(ctx context.Context, email string, pending PendingSignUp, ttl time.Duration) error
	Get(ctx context.Context, email string) (PendingSignUp, error)
	Delete(ctx context.Context, email string) error
}

// PasswordResetStore keeps pending password resets keyed by user id.
type PasswordResetStore interface {
	Save(ctx context.Context, userID uuid.UUID, pending PendingPasswordReset, ttl time.Duration) error
	Get(ctx context.Context, userID uuid.UUID) (PendingPasswordReset, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
