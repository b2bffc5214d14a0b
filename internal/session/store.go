package session

import (
	"sync"

	"github.com/hawkarm/heval-bot/internal/models"
)

// Store owns every UserSession, keyed by the transport-supplied user ID.
// Safe for concurrent use; sessions are created lazily on first contact.
type Store struct {
	mu              sync.RWMutex
	sessions        map[int64]*UserSession
	defaultLanguage models.Language
}

func NewStore(defaultLanguage models.Language) *Store {
	return &Store{
		sessions:        make(map[int64]*UserSession),
		defaultLanguage: defaultLanguage,
	}
}

// GetOrCreate returns the session for userID, creating a default one on
// first contact. A fresh session has an empty history, zero counters, a zero
// last-message time (so the first message is never rate-limited), and the
// store's default language.
func (st *Store) GetOrCreate(userID int64) *UserSession {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s = &UserSession{
		UserID:   userID,
		Language: st.defaultLanguage,
	}
	st.sessions[userID] = s
	return s
}

// Len reports how many sessions exist.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
