// Package storage provides in-memory stores shared by the delivery layer.
package storage

import (
	"sync"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

// SessionStorage holds the active quiz session of each chat. A chat owns at
// most one session; the update loop is the only writer for a given chat, the
// lock only guards the map itself.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.Session
}

// NewSessionStorage creates an empty SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.Session),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat, or nil if the chat has none.
func (s *SessionStorage) Get(chatID int64) *entities.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
