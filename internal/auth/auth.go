package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)

// Verifier checks a username/password pair. Swapping the implementation
// (hashed passwords, external identity provider) does not touch the
// session state machine.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticCredentials is the fixed username -> password table loaded from
// config at startup. Matching is exact and case-sensitive.
type StaticCredentials map[string]string

func (c StaticCredentials) Verify(username, password string) bool {
	p, ok := c[username]
	return ok && p == password
}

// Manager tracks server-side sessions keyed by an opaque token. With a
// secret configured, issued tokens carry an HMAC-SHA256 signature so a
// forged cookie never reaches the session map.
type Manager struct {
	mu       sync.RWMutex
	verifier Verifier
	secret   []byte
	sessions map[string]string
}

func NewManager(verifier Verifier, secret string) *Manager {
	m := &Manager{verifier: verifier, sessions: make(map[string]string)}
	if secret != "" {
		m.secret = []byte(secret)
	}
	return m
}

// Login returns a session token bound to username. Unknown user and wrong
// password are indistinguishable to the caller.
func (m *Manager) Login(username, password string) (string, error) {
	if m.verifier == nil || !m.verifier.Verify(username, password) {
		return "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = username
	m.mu.Unlock()
	return m.sign(token), nil
}

// Logout destroys the session. Logging out twice is not an error.
func (m *Manager) Logout(token string) {
	id, ok := m.unsign(token)
	if !ok {
		return
	}
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// User returns the username bound to the token.
func (m *Manager) User(token string) (string, error) {
	id, ok := m.unsign(token)
	if !ok {
		return "", ErrNoSession
	}
	m.mu.RLock()
	username, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNoSession
	}
	return username, nil
}

func (m *Manager) sign(token string) string {
	if m.secret == nil {
		return token
	}
	return token + "." + m.signature(token)
}

func (m *Manager) unsign(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if m.secret == nil {
		return token, true
	}
	id, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.signature(id))) {
		return "", false
	}
	return id, true
}

func (m *Manager) signature(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
