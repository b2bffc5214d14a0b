package session

import (
	"math"
	"time"
)

// DefaultRateLimit is the minimum interval between a user's chat messages.
// Commands and feedback capture bypass the limit entirely.
const DefaultRateLimit = 3 * time.Second

// CheckRate decides whether a chat message arriving at now is admitted given
// the session's last accepted-message time. On denial it reports the
// remaining wait in seconds, rounded to one decimal for display. Pure
// function; it mutates nothing.
func CheckRate(now, lastMessageTime time.Time, limit time.Duration) (admit bool, remainingSeconds float64) {
	remaining := limit - now.Sub(lastMessageTime)
	if remaining <= 0 {
		return true, 0
	}
	return false, math.Round(remaining.Seconds()*10) / 10
}
