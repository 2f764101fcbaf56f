package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/model"
)

// Flow names reported to the FlowRecorder.
const (
	FlowSignUpRequest        = "sign_up_request"
	FlowSignUp               = "sign_up"
	FlowSignIn               = "sign_in"
	FlowRefresh              = "refresh"
	FlowLogout               = "logout"
	FlowPasswordResetRequest = "password_reset_request"
	FlowPasswordReset        = "password_reset"
)

// FlowRecorder counts flow outcomes.
type FlowRecorder interface {
	RecordFlow(flow string, err error)
}

// Settings holds the pending flow parameters.
type Settings struct {
	SignUpPendingTTL time.Duration
	ResetPendingTTL  time.Duration
	ResendCooldown   time.Duration
	ResetTokenLength int
	ClientBaseURL    string
}

type Auth struct {
	userStore     model.UserStore
	signupStore   model.SignupStore
	resetStore    model.PasswordResetStore
	transactor    model.Transactor
	hasher        model.PasswordHasher
	tokenService  *TokenService
	notifier      model.Notifier
	recorder      FlowRecorder
	settings      Settings
	logger        *logger.Logger
	now           func() time.Time
	generateCode  func() (string, error)
	generateToken func(length int) (string, error)
}

func NewAuth(
	userStore model.UserStore,
	signupStore model.SignupStore,
	resetStore model.PasswordResetStore,
	transactor model.Transactor,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	notifier model.Notifier,
	recorder FlowRecorder,
	settings Settings,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:     userStore,
		signupStore:   signupStore,
		resetStore:    resetStore,
		transactor:    transactor,
		hasher:        hasher,
		tokenService:  tokenService,
		notifier:      notifier,
		recorder:      recorder,
		settings:      settings,
		logger:        logger,
		now:           time.Now,
		generateCode:  generateCode,
		generateToken: generateToken,
	}
}

func (a *Auth) record(flow string, err error) {
	if a.recorder != nil {
		a.recorder.RecordFlow(flow, err)
	}
}

// findUser returns the user for email. ok is false when there is none.
func (a *Auth) findUser(ctx context.Context, email string) (user model.User, ok bool, err error) {
	user, err = a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, false, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, true, nil
}

// checkCooldown rejects a resend requested before the cooldown has passed.
func (a *Auth) checkCooldown(timeToSend time.Time) error {
	// a send time ahead of the clock counts as just sent
	elapsed := max(int64(a.now().Sub(timeToSend)/time.Second), 0)
	cooldown := int64(a.settings.ResendCooldown / time.Second)
	if elapsed < cooldown {
		return model.NewConflictError("You can resend message after %ds", cooldown-elapsed)
	}
	return nil
}

// SignUpRequest stores a pending registration and mails its confirmation code.
func (a *Auth) SignUpRequest(ctx context.Context, email, password string) (err error) {
	defer func() { a.record(FlowSignUpRequest, err) }()

	a.logger.Debug("Auth service: sign up requested",
		"email", email)

	_, exists, err := a.findUser(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.NewConflictError("User with email:%s already exists", email)
	}

	pending, err := a.signupStore.Get(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
	case err != nil:
		a.logger.Error("Auth service: failed to get pending sign up",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get pending sign up: %w", err)
	default:
		if err := a.checkCooldown(pending.TimeToSend); err != nil {
			a.logger.Info("Auth service: sign up resend within cooldown",
				"email", email)
			return err
		}
	}

	code, err := a.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	err = a.signupStore.Save(ctx, email, model.PendingSignUp{
		Code:       code,
		Password:   password,
		TimeToSend: a.now(),
	}, a.settings.SignUpPendingTTL)
	if err != nil {
		a.logger.Error("Auth service: failed to save pending sign up",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to save pending sign up: %w", err)
	}

	if err := a.notifier.SendConfirmationCode(ctx, email, code); err != nil {
		a.logger.Error("Auth service: failed to send confirmation code",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send confirmation code: %w", err)
	}

	a.logger.Info("Auth service: confirmation code sent",
		"email", email)

	return nil
}

// SignUp completes a pending registration and signs the new user in.
func (a *Auth) SignUp(ctx context.Context, email, code string) (pair model.TokenPair, err error) {
	defer func() { a.record(FlowSignUp, err) }()

	a.logger.Debug("Auth service: completing sign up",
		"email", email)

	_, exists, err := a.findUser(ctx, email)
	if err != nil {
		return model.TokenPair{}, err
	}
	if exists {
		return model.TokenPair{}, model.NewConflictError("User with email:%s already exists", email)
	}

	pending, err := a.signupStore.Get(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.NewNotFoundError("Your sign up request is not valid anymore")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get pending sign up",
			"email", email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get pending sign up: %w", err)
	}

	if pending.Code != code {
		a.logger.Info("Auth service: confirmation code mismatch",
			"email", email)
		return model.TokenPair{}, model.NewConflictError("Code is not valid!")
	}

	hash, err := a.hasher.Hash(pending.Password)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.transactor.WithinTx(ctx, func(ctx context.Context) error {
		user, err := a.userStore.Create(ctx, model.User{Email: email, PasswordHash: hash})
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.NewConflictError("User with email:%s already exists", email)
		}
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		pair, err = a.tokenService.Issue(ctx, user)
		return err
	})
	if err != nil {
		a.logger.Error("Auth service: failed to complete sign up",
			"email", email,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	if err := a.signupStore.Delete(ctx, email); err != nil {
		a.logger.Error("Auth service: failed to delete pending sign up",
			"email", email,
			"error", err.Error())
	}

	a.logger.Info("Auth service: user signed up",
		"email", email)

	return pair, nil
}

// SignIn checks the credentials and issues a new pair.
func (a *Auth) SignIn(ctx context.Context, email, password string) (pair model.TokenPair, err error) {
	defer func() { a.record(FlowSignIn, err) }()

	a.logger.Debug("Auth service: signing in",
		"email", email)

	user, exists, err := a.findUser(ctx, email)
	if err != nil {
		return model.TokenPair{}, err
	}
	if !exists {
		return model.TokenPair{}, model.NewNotFoundError("User with email: %s does not exist", email)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password",
			"email", email)
		return model.TokenPair{}, model.NewUnauthorizedError("Password or email is incorrect")
	}

	pair, err = a.tokenService.Issue(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"email", email,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: user signed in",
		"email", email)

	return pair, nil
}

// Refresh rotates a refresh token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (pair model.TokenPair, err error) {
	defer func() { a.record(FlowRefresh, err) }()

	pair, err = a.tokenService.Refresh(ctx, refreshToken)
	if err != nil {
		if _, ok := model.KindOf(err); ok {
			a.logger.Info("Auth service: refresh denied",
				"error", err.Error())
		} else {
			a.logger.Error("Auth service: failed to refresh tokens",
				"error", err.Error())
		}
		return model.TokenPair{}, err
	}

	return pair, nil
}

// Logout revokes a refresh token. Unknown tokens are not an error.
func (a *Auth) Logout(ctx context.Context, refreshToken string) (err error) {
	defer func() { a.record(FlowLogout, err) }()

	if err := a.tokenService.RevokeByToken(ctx, refreshToken); err != nil {
		a.logger.Error("Auth service: failed to log out",
			"error", err.Error())
		return err
	}
	return nil
}

// PasswordResetRequest stores a pending reset and mails the reset link.
func (a *Auth) PasswordResetRequest(ctx context.Context, email string) (err error) {
	defer func() { a.record(FlowPasswordResetRequest, err) }()

	a.logger.Debug("Auth service: password reset requested",
		"email", email)

	user, exists, err := a.findUser(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewNotFoundError("User with email: %s does not exist", email)
	}

	pending, err := a.resetStore.Get(ctx, user.ID)
	switch {
	case errors.Is(err, model.ErrNotFound):
	case err != nil:
		a.logger.Error("Auth service: failed to get pending password reset",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get pending password reset: %w", err)
	default:
		if err := a.checkCooldown(pending.TimeToSend); err != nil {
			a.logger.Info("Auth service: password reset resend within cooldown",
				"email", email)
			return err
		}
	}

	token, err := a.generateToken(a.settings.ResetTokenLength)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	err = a.resetStore.Save(ctx, user.ID, model.PendingPasswordReset{
		Token:      token,
		TimeToSend: a.now(),
	}, a.settings.ResetPendingTTL)
	if err != nil {
		a.logger.Error("Auth service: failed to save pending password reset",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to save pending password reset: %w", err)
	}

	url := a.settings.ClientBaseURL + "/reset-password/" + token
	if err := a.notifier.SendResetLink(ctx, user.Email, url); err != nil {
		a.logger.Error("Auth service: failed to send reset link",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send reset link: %w", err)
	}

	a.logger.Info("Auth service: reset link sent",
		"email", email)

	return nil
}

// PasswordResetCompletion sets a new password and revokes every refresh
// token of the user.
func (a *Auth) PasswordResetCompletion(ctx context.Context, email, newPassword, token string) (err error) {
	defer func() { a.record(FlowPasswordReset, err) }()

	a.logger.Debug("Auth service: completing password reset",
		"email", email)

	user, exists, err := a.findUser(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewNotFoundError("User with email: %s does not exist", email)
	}

	pending, err := a.resetStore.Get(ctx, user.ID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewNotFoundError("Your password reset request is not valid anymore")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get pending password reset",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get pending password reset: %w", err)
	}

	if pending.Token != token {
		a.logger.Info("Auth service: reset token mismatch",
			"email", email)
		return model.NewConflictError("Token is not valid!")
	}

	if a.hasher.Verify(newPassword, user.PasswordHash) {
		return model.NewConflictError("The new password matches the previous one!")
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := a.userStore.UpdatePassword(ctx, user.Email, hash); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return a.tokenService.RevokeAllForUser(ctx, user.ID)
	})
	if err != nil {
		a.logger.Error("Auth service: failed to complete password reset",
			"email", email,
			"error", err.Error())
		return err
	}

	if err := a.resetStore.Delete(ctx, user.ID); err != nil {
		a.logger.Error("Auth service: failed to delete pending password reset",
			"email", email,
			"error", err.Error())
	}

	a.logger.Info("Auth service: password reset",
		"email", email)

	return nil
}

// Authenticate returns the payload of a valid access token.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.TokenPayload, error) {
	return a.tokenService.Authenticate(ctx, accessToken)
}
