package context

import (
	"context"

	"github.com/dtroode/authcore/internal/model"
)

var _ model.ContextManager = (*Manager)(nil)

type payloadKey struct{}

// Manager stores the authenticated token payload in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetPayloadToContext(ctx context.Context, payload model.TokenPayload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext reports false when no payload was set.
func (m *Manager) GetPayloadFromContext(ctx context.Context) (model.TokenPayload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(model.TokenPayload)
	return payload, ok
}
