package storage

import (
	"context"
	"sync"

	"github.com/hawkarm/heval-bot/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	feedback []*models.Feedback
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) SaveFeedback(ctx context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback = append(s.feedback, feedback)
	return nil
}

// ListFeedback returns the most recent records first, at most limit of them.
// A non-positive limit returns everything.
func (s *MemoryStorage) ListFeedback(ctx context.Context, limit int) ([]*models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.feedback)
	if limit <= 0 || limit > n {
		limit = n
	}
	result := make([]*models.Feedback, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, s.feedback[i])
	}
	return result, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
