package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authcore/internal/model"
)

var (
	_ model.SignupStore        = (*SignupRepository)(nil)
	_ model.PasswordResetStore = (*PasswordResetRepository)(nil)
)

const (
	signupPrefix        = "signup:"
	passwordResetPrefix = "password-reset:"
)

// SignupRepository keeps pending sign-ups keyed by email.
type SignupRepository struct {
	store *Store
}

func NewSignupRepository(store *Store) *SignupRepository {
	return &SignupRepository{store: store}
}

func (r *SignupRepository) Save(ctx context.Context, email string, pending model.PendingSignUp, ttl time.Duration) error {
	return r.store.Set(ctx, signupPrefix+email, pending, ttl)
}

func (r *SignupRepository) Get(ctx context.Context, email string) (model.PendingSignUp, error) {
	var pending model.PendingSignUp
	if err := r.store.Get(ctx, signupPrefix+email, &pending); err != nil {
		return model.PendingSignUp{}, err
	}
	return pending, nil
}

func (r *SignupRepository) Delete(ctx context.Context, email string) error {
	return r.store.Delete(ctx, signupPrefix+email)
}

// PasswordResetRepository keeps pending password resets keyed by user id.
type PasswordResetRepository struct {
	store *Store
}

func NewPasswordResetRepository(store *Store) *PasswordResetRepository {
	return &PasswordResetRepository{store: store}
}

func (r *PasswordResetRepository) Save(ctx context.Context, userID uuid.UUID, pending model.PendingPasswordReset, ttl time.Duration) error {
	return r.store.Set(ctx, passwordResetPrefix+userID.String(), pending, ttl)
}

func (r *PasswordResetRepository) Get(ctx context.Context, userID uuid.UUID) (model.PendingPasswordReset, error) {
	var pending model.PendingPasswordReset
	if err := r.store.Get(ctx, passwordResetPrefix+userID.String(), &pending); err != nil {
		return model.PendingPasswordReset{}, err
	}
	return pending, nil
}

func (r *PasswordResetRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.store.Delete(ctx, passwordResetPrefix+userID.String())
}
