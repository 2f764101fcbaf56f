package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/authcore/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all healthy",
			checks:     map[string]HealthCheck{"postgres": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`,
		},
		{
			name:       "redis down",
			checks:     map[string]HealthCheck{"postgres": ok, "redis": failing},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"postgres":"ok","redis":"fail"}}`,
		},
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.checks, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()

			h.Check(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHealth_CheckHasDeadline(t *testing.T) {
	var hadDeadline bool
	h := NewHealth(map[string]HealthCheck{
		"probe": func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		},
	}, testutil.MakeNoopLogger())

	h.Check(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, hadDeadline)
}
