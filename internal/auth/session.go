package auth

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager tracks authenticated admin sessions in memory only.
// A restart drops every session, matching the old console's behavior of
// returning to the login form on reload.
type SessionManager struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{active: make(map[string]struct{})}
}

// Open mints a new session token.
func (m *SessionManager) Open() string {
	token := uuid.New().String()
	m.mu.Lock()
	m.active[token] = struct{}{}
	m.mu.Unlock()
	return token
}

// Valid reports whether the token belongs to an open session.
func (m *SessionManager) Valid(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	_, ok := m.active[token]
	m.mu.Unlock()
	return ok
}

// Close ends the session. Closing an unknown token is a no-op.
func (m *SessionManager) Close(token string) {
	m.mu.Lock()
	delete(m.active, token)
	m.mu.Unlock()
}
