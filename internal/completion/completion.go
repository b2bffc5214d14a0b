package completion

import (
	"context"

	"github.com/hawkarm/heval-bot/internal/models"
)

// Completer generates the next reply for a conversation. The history is an
// ordered snapshot, oldest turn first, ending with the user's newest message.
// An empty or blank completion is reported as an error.
type Completer interface {
	Complete(ctx context.Context, history []models.Turn) (string, error)
}
