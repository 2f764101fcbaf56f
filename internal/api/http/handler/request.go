package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 16

var errInvalidBody = errors.New("invalid request body")

var validate = newValidator()

// validationError is a rejected request field.
type validationError struct {
	field  string
	reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("%s %s", e.field, e.reason)
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,strongpassword"`
}

func (r *credentialsRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
}

type signUpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,number"`
}

func (r *signUpRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Code = strings.TrimSpace(r.Code)
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *resetPasswordRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
}

type createNewPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,strongpassword"`
	Token    string `json:"token" validate:"required"`
}

func (r *createNewPasswordRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Token = strings.TrimSpace(r.Token)
}

type normalizer interface {
	normalize()
}

// decode reads a JSON body into dst, normalizes and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst normalizer) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errInvalidBody
	}
	dst.normalize()

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return toValidationError(fieldErrs[0])
		}
		return fmt.Errorf("failed to validate request: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(err)
	}
	return v
}

func toValidationError(fe validator.FieldError) *validationError {
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be a valid email address"
	case "min":
		reason = fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "number":
		reason = "must be numeric"
	case "strongpassword":
		reason = "is not strong enough"
	default:
		reason = "is invalid"
	}
	return &validationError{field: fe.Field(), reason: reason}
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// strongPassword requires an upper and lower case letter, a digit and a
// symbol. Length is checked by the min tag.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, symbol bool
	for _, c := range fl.Field().String() {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
