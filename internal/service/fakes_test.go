package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authcore/internal/model"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]model.User{}}
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUsers) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt, user.UpdatedAt = time.Now(), time.Now()
	s.users[user.Email] = user
	return user, nil
}

func (s *memUsers) UpdatePassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	s.users[email] = u
	return nil
}

type memRefreshTokens struct {
	mu     sync.Mutex
	tokens map[string]model.RefreshToken
}

func newMemRefreshTokens() *memRefreshTokens {
	return &memRefreshTokens{tokens: map[string]model.RefreshToken{}}
}

func (s *memRefreshTokens) Create(_ context.Context, token model.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.Token] = token
	return nil
}

func (s *memRefreshTokens) GetByToken(_ context.Context, token string) (model.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.tokens[token]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (s *memRefreshTokens) Rotate(_ context.Context, oldToken, newToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.tokens[oldToken]
	if !ok {
		return model.ErrNotFound
	}
	delete(s.tokens, oldToken)
	rt.Token = newToken
	s.tokens[newToken] = rt
	return nil
}

func (s *memRefreshTokens) DeleteByToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *memRefreshTokens) DeleteAllByUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, rt := range s.tokens {
		if rt.UserID == userID {
			delete(s.tokens, k)
		}
	}
	return nil
}

func (s *memRefreshTokens) countFor(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rt := range s.tokens {
		if rt.UserID == userID {
			n++
		}
	}
	return n
}

type memPending[K comparable, V any] struct {
	mu     sync.Mutex
	values map[K]V
	ttls   map[K]time.Duration
}

func newMemPending[K comparable, V any]() *memPending[K, V] {
	return &memPending[K, V]{values: map[K]V{}, ttls: map[K]time.Duration{}}
}

func (s *memPending[K, V]) Save(_ context.Context, key K, value V, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *memPending[K, V]) Get(_ context.Context, key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		var zero V
		return zero, model.ErrNotFound
	}
	return v, nil
}

func (s *memPending[K, V]) Delete(_ context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	delete(s.ttls, key)
	return nil
}

type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type sentMessage struct {
	to      string
	payload string
}

type capturingNotifier struct {
	mu    sync.Mutex
	codes []sentMessage
	links []sentMessage
	err   error
}

func (n *capturingNotifier) SendConfirmationCode(_ context.Context, toEmail, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.codes = append(n.codes, sentMessage{to: toEmail, payload: code})
	return nil
}

func (n *capturingNotifier) SendResetLink(_ context.Context, toEmail, url string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.links = append(n.links, sentMessage{to: toEmail, payload: url})
	return nil
}

func (n *capturingNotifier) lastCode() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.codes) == 0 {
		return ""
	}
	return n.codes[len(n.codes)-1].payload
}

func (n *capturingNotifier) lastLink() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.links) == 0 {
		return ""
	}
	return n.links[len(n.links)-1].payload
}

type flowCall struct {
	flow string
	err  error
}

type recordingRecorder struct {
	mu    sync.Mutex
	calls []flowCall
}

func (r *recordingRecorder) RecordFlow(flow string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, flowCall{flow: flow, err: err})
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
