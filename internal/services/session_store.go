package services

import (
	"sync"

	"cycleroute/internal/utils"
)

// SessionStore maps opaque bearer tokens to user ids. Sessions live only in
// process memory and carry no expiry; logout removes the entry.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]string),
	}
}

// Create opens a session for userID and returns its token.
func (s *SessionStore) Create(userID string) string {
	token := utils.GenerateSessionToken()

	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	return token
}

// Get resolves a token to its user id.
func (s *SessionStore) Get(token string) (string, bool) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()

	return userID, ok
}

// Delete invalidates a token. Returns false when the token was not active.
func (s *SessionStore) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return false
	}
	delete(s.sessions, token)

	return true
}
