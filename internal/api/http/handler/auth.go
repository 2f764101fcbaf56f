package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/authcore/internal/logger"
	"github.com/dtroode/authcore/internal/model"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "rt"

// AuthService defines the auth flows exposed over HTTP.
type AuthService interface {
	SignUpRequest(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, code string) (model.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	PasswordResetRequest(ctx context.Context, email string) error
	PasswordResetCompletion(ctx context.Context, email, newPassword, token string) error
}

// CookieSettings controls the refresh token cookie.
type CookieSettings struct {
	TTL    time.Duration
	Secure bool
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	cookie         CookieSettings
	logger         *logger.Logger
	now            func() time.Time
}

func NewAuth(authService AuthService, contextManager model.ContextManager, cookie CookieSettings, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
		now:            time.Now,
	}
}

func (h *Auth) SignUpRequest(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.SignUpRequest(r.Context(), req.Email, req.Password); err != nil {
		h.fail(w, "sign up request", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	pair, err := h.authService.SignUp(r.Context(), req.Email, req.Code)
	if err != nil {
		h.fail(w, "sign up", err)
		return
	}

	h.writePair(w, http.StatusCreated, pair)
}

func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	pair, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, "sign in", err)
		return
	}

	h.writePair(w, http.StatusOK, pair)
}

func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshTokenFrom(r)
	if !ok {
		writeError(w, http.StatusForbidden, "Refresh token malformed")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		h.fail(w, "refresh", err)
		return
	}

	h.writePair(w, http.StatusOK, pair)
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken, ok := refreshTokenFrom(r)
	if !ok {
		writeError(w, http.StatusForbidden, "Refresh token malformed")
		return
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		h.fail(w, "logout", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.PasswordResetRequest(r.Context(), req.Email); err != nil {
		h.fail(w, "reset password", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Auth) CreateNewPassword(w http.ResponseWriter, r *http.Request) {
	var req createNewPasswordRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.PasswordResetCompletion(r.Context(), req.Email, req.Password, req.Token); err != nil {
		h.fail(w, "create new password", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Session describes the caller's access token. It must run behind the
// authenticate middleware.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.contextManager.GetPayloadFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		ID:        payload.Subject.String(),
		Email:     payload.Email,
		ExpiresAt: payload.ExpiresAt.UTC(),
	})
}

func (h *Auth) writePair(w http.ResponseWriter, status int, pair model.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		Expires:  h.now().Add(h.cookie.TTL),
		MaxAge:   int(h.cookie.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, status, tokenResponse{AccessToken: pair.AccessToken})
}

func (h *Auth) fail(w http.ResponseWriter, op string, err error) {
	status, message := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Auth handler: "+op+" failed",
			"error", err.Error())
	} else {
		h.logger.Debug("Auth handler: "+op+" rejected",
			"status", status,
			"error", err.Error())
	}
	writeError(w, status, message)
}

func refreshTokenFrom(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
