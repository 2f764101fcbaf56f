package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore persists issued refresh tokens. A token is live only
// while a row holding its exact value exists.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Rotate(ctx context.Context, oldToken, newToken string) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}

// RefreshToken is a currently valid refresh token owned by a user.
type RefreshToken struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
