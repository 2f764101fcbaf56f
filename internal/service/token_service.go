package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/model"
)

const accessDenied = "Access Denied"

// TokenService issues, rotates and revokes token pairs. A refresh token is
// accepted only while the store holds its exact value.
type TokenService struct {
	issuer model.TokenIssuer
	store  model.RefreshTokenStore
	logger *logger.Logger
}

func NewTokenService(issuer model.TokenIssuer, store model.RefreshTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{issuer: issuer, store: store, logger: logger}
}

// Issue signs a pair for user and persists its refresh token.
func (s *TokenService) Issue(ctx context.Context, user model.User) (model.TokenPair, error) {
	pair, err := s.issuer.IssuePair(user.ID, user.Email)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	if err := s.store.Create(ctx, model.RefreshToken{
		ID:     uuid.New(),
		Token:  pair.RefreshToken,
		UserID: user.ID,
	}); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair, rotating the stored
// value in place.
func (s *TokenService) Refresh(ctx context.Context, presented string) (model.TokenPair, error) {
	payload, err := s.issuer.Verify(presented, model.TokenRoleRefresh)
	if err != nil {
		if errors.Is(err, model.ErrExpiredToken) || errors.Is(err, model.ErrInvalidSignature) {
			return model.TokenPair{}, model.NewForbiddenError(err, accessDenied)
		}
		return model.TokenPair{}, fmt.Errorf("failed to verify refresh token: %w", err)
	}

	if _, err := s.store.GetByToken(ctx, presented); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TokenPair{}, model.NewForbiddenError(nil, accessDenied)
		}
		return model.TokenPair{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	pair, err := s.issuer.IssuePair(payload.Subject, payload.Email)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	if err := s.store.Rotate(ctx, presented, pair.RefreshToken); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Token service: refresh token superseded concurrently",
				"user_id", payload.Subject.String())
			return model.TokenPair{}, model.NewForbiddenError(nil, accessDenied)
		}
		return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return pair, nil
}

// RevokeByToken deletes the stored refresh token. Unknown tokens are ignored.
func (s *TokenService) RevokeByToken(ctx context.Context, token string) error {
	if err := s.store.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

// Authenticate verifies an access token.
func (s *TokenService) Authenticate(_ context.Context, accessToken string) (model.TokenPayload, error) {
	payload, err := s.issuer.Verify(accessToken, model.TokenRoleAccess)
	if err != nil {
		return model.TokenPayload{}, &model.AuthError{Kind: model.KindUnauthorized, Message: "Unauthorized", Err: err}
	}
	return payload, nil
}
