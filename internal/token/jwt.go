package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/authcore/internal/model"
)

// Claims represents JWT claims shared by access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Settings configures secrets and lifetimes per token role.
type Settings struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

var _ model.TokenIssuer = (*JWT)(nil)

// JWT implements TokenIssuer backed by symmetric HMAC.
type JWT struct {
	settings Settings
	now      func() time.Time
}

// NewJWT creates a new JWT token issuer with the provided settings.
func NewJWT(settings Settings) *JWT {
	return &JWT{settings: settings, now: time.Now}
}

// IssuePair signs an access and a refresh token for the same subject.
func (j *JWT) IssuePair(subject uuid.UUID, email string) (model.TokenPair, error) {
	access, err := j.sign(subject, email, model.TokenRoleAccess)
	if err != nil {
		return model.TokenPair{}, err
	}

	refresh, err := j.sign(subject, email, model.TokenRoleRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify validates the token with the secret of the given role and returns its payload.
func (j *JWT) Verify(tokenString string, role model.TokenRole) (model.TokenPayload, error) {
	secret, _ := j.roleParams(role)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenPayload{}, model.ErrExpiredToken
		}
		return model.TokenPayload{}, fmt.Errorf("%w: %v", model.ErrInvalidSignature, err)
	}
	if !token.Valid {
		return model.TokenPayload{}, model.ErrInvalidSignature
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("%w: bad subject", model.ErrInvalidSignature)
	}

	return model.TokenPayload{
		Subject:   subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}

// TTL returns the lifetime of tokens with the given role.
func (j *JWT) TTL(role model.TokenRole) time.Duration {
	_, ttl := j.roleParams(role)
	return ttl
}

func (j *JWT) sign(subject uuid.UUID, email string, role model.TokenRole) (string, error) {
	secret, ttl := j.roleParams(role)
	now := j.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", role, err)
	}

	return tokenString, nil
}

func (j *JWT) roleParams(role model.TokenRole) (string, time.Duration) {
	if role == model.TokenRoleRefresh {
		return j.settings.RefreshSecret, j.settings.RefreshTTL
	}
	return j.settings.AccessSecret, j.settings.AccessTTL
}
