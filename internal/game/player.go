package game

import (
	"time"

	"github.com/google/uuid"
)

// Player is one side of a versus game. Start is self-declared: it is set
// the first time the player starts or submits, and each player's countdown
// is anchored to their own start rather than a shared clock.
type Player struct {
	SessionID uuid.UUID
	Start     *time.Time
	Done      bool
	Words     []SubmittedWord
}

// PlaySecsRemaining reports how many seconds this player has left on their
// personal clock. The second return is false if the player has not started.
// A done player is always at zero.
func (p Player) PlaySecsRemaining(now time.Time) (float64, bool) {
	if p.Start == nil {
		return 0, false
	}
	if p.Done {
		return 0, true
	}
	remaining := GameDurationSecs - now.Sub(*p.Start).Seconds()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// Points sums the scores of the player's submitted words. Words are
// expected to already be deduped by text.
func (p Player) Points() int {
	total := 0
	for _, w := range p.Words {
		total += w.Points()
	}
	return total
}
