package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/dtroode/authcore/internal/logger"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health reports dependency status on /healthz.
type Health struct {
	checks map[string]HealthCheck
	logger *logger.Logger
}

func NewHealth(checks map[string]HealthCheck, logger *logger.Logger) *Health {
	return &Health{checks: checks, logger: logger}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Error("Health handler: check failed",
				"check", name,
				"error", err.Error())
			resp.Status = "unavailable"
			resp.Checks[name] = "fail"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
