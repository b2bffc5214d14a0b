package storage

import (
	"context"

	"github.com/hawkarm/heval-bot/internal/models"
)

// Storage persists user-submitted feedback. Session state is deliberately
// not persisted; feedback is the only durable record the bot keeps.
type Storage interface {
	SaveFeedback(ctx context.Context, feedback *models.Feedback) error
	ListFeedback(ctx context.Context, limit int) ([]*models.Feedback, error)
	Close() error
}
