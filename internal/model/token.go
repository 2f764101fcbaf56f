package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenRole selects the secret and TTL used for a token.
type TokenRole int

const (
	// TokenRoleAccess is a short-lived token authorizing API calls.
	TokenRoleAccess TokenRole = iota
	// TokenRoleRefresh is a long-lived token exchanged for a new pair.
	TokenRoleRefresh
)

func (r TokenRole) String() string {
	switch r {
	case TokenRoleAccess:
		return "access"
	case TokenRoleRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// TokenPayload holds the claims signed into both access and refresh tokens.
type TokenPayload struct {
	Subject   uuid.UUID
	Email     string
	ExpiresAt time.Time
	ID        string
}

// TokenPair is an access token together with its refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenIssuer creates and verifies signed tokens.
type TokenIssuer interface {
	IssuePair(subject uuid.UUID, email string) (TokenPair, error)
	Verify(token string, role TokenRole) (TokenPayload, error)
}
