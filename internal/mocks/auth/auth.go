package auth

// Package auth contains simple hand-written test doubles for the auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenAPI     = (*MockTokenAPI)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
	_ ports.CartStore    = (*MemoryCartStore)(nil)
)

// ErrSessionNotFound is returned by MemorySessionStore for unknown sessions.
var ErrSessionNotFound = errors.New("session not found")

// MockTokenAPI simulates the backend token endpoints with deterministic
// responses. Override the Func fields for failure scenarios.
type MockTokenAPI struct {
	ObtainFunc  func(ctx context.Context, username, password string) (ports.TokenPair, error)
	RefreshFunc func(ctx context.Context, refresh string) (string, error)

	// Deterministic values for predictable testing
	Pair         ports.TokenPair
	RefreshedTok string

	mu           sync.Mutex
	obtainCalls  int
	refreshCalls int
}

// NewMockTokenAPI creates a MockTokenAPI with sensible defaults.
func NewMockTokenAPI() *MockTokenAPI {
	return &MockTokenAPI{
		Pair:         ports.TokenPair{Access: "access-1", Refresh: "refresh-1"},
		RefreshedTok: "access-2",
	}
}

func (m *MockTokenAPI) ObtainToken(ctx context.Context, username, password string) (ports.TokenPair, error) {
	m.mu.Lock()
	m.obtainCalls++
	m.mu.Unlock()
	if m.ObtainFunc != nil {
		return m.ObtainFunc(ctx, username, password)
	}
	return m.Pair, nil
}

func (m *MockTokenAPI) RefreshToken(ctx context.Context, refresh string) (string, error) {
	m.mu.Lock()
	m.refreshCalls++
	m.mu.Unlock()
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refresh)
	}
	return m.RefreshedTok, nil
}

// ObtainCalls reports how many times ObtainToken was called.
func (m *MockTokenAPI) ObtainCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.obtainCalls
}

// RefreshCalls reports how many times RefreshToken was called.
func (m *MockTokenAPI) RefreshCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCalls
}

// MemorySessionStore is an in-memory ports.SessionStore for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions the store holds.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// MemoryCartStore is an in-memory ports.CartStore for tests.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]ports.CartState
}

// NewMemoryCartStore creates an empty MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]ports.CartState)}
}

func (s *MemoryCartStore) SaveCart(_ context.Context, sessionID string, state ports.CartState) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = state
	return nil
}

func (s *MemoryCartStore) GetCart(_ context.Context, sessionID string) (ports.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID], nil
}

func (s *MemoryCartStore) DeleteCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// Has reports whether a cart exists for the session.
func (s *MemoryCartStore) Has(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[sessionID]
	return ok
}
