package session

import "github.com/hawkarm/heval-bot/internal/models"

// AppendTurn adds a turn to the tail of the session history. If the history
// exceeds MaxHistory afterwards, the oldest turns are dropped so exactly the
// most recent MaxHistory entries remain, in their original order.
//
// Caller must hold the session lock.
func (s *UserSession) AppendTurn(t models.Turn) {
	s.History = append(s.History, t)
	if len(s.History) > MaxHistory {
		s.History = s.History[len(s.History)-MaxHistory:]
	}
}

// ClearHistory empties the session history. Counters are untouched.
//
// Caller must hold the session lock.
func (s *UserSession) ClearHistory() {
	s.History = nil
}

// HistorySnapshot returns a copy of the history, oldest turn first. The copy
// is safe to hand to the completion service outside the session lock.
//
// Caller must hold the session lock.
func (s *UserSession) HistorySnapshot() []models.Turn {
	snapshot := make([]models.Turn, len(s.History))
	copy(snapshot, s.History)
	return snapshot
}
