package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when the requested entry is absent or expired.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")

	ErrExpiredToken     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// ErrorKind classifies expected auth flow failures.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// AuthError is an expected failure of an auth flow. Message is safe to show
// to the caller.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(format string, args ...any) *AuthError {
	return &AuthError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) *AuthError {
	return &AuthError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorizedError(format string, args ...any) *AuthError {
	return &AuthError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NewForbiddenError wraps cause, which may be nil.
func NewForbiddenError(cause error, format string, args ...any) *AuthError {
	return &AuthError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf reports the kind of the first AuthError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind, true
	}
	return 0, false
}
