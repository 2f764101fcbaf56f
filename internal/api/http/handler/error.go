package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/authcore/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusOf maps an error to its HTTP status and caller-safe message.
func statusOf(err error) (int, string) {
	var vErr *validationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error()
	}
	if errors.Is(err, errInvalidBody) {
		return http.StatusBadRequest, errInvalidBody.Error()
	}

	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Kind {
		case model.KindNotFound:
			return http.StatusNotFound, authErr.Message
		case model.KindConflict:
			return http.StatusConflict, authErr.Message
		case model.KindUnauthorized:
			return http.StatusUnauthorized, authErr.Message
		case model.KindForbidden:
			return http.StatusForbidden, authErr.Message
		}
	}

	return http.StatusInternalServerError, "internal server error"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// WriteError writes err as a JSON error body.
func WriteError(w http.ResponseWriter, err error) {
	status, message := statusOf(err)
	writeError(w, status, message)
}
