package matchqueue

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// pollChecker is the single queue read PollUntilSettled repeats.
type pollChecker interface {
	PollCheck(ctx context.Context, entryID uuid.UUID) (PollStatus, *Match, error)
}

// PollUntilSettled repeatedly checks the session's own entry until it is
// Matched or Expired, or the budget elapses (which synthesizes Expired).
// The loop sleeps between checks and never holds a database lock across a
// sleep. Context cancellation ends the wait early.
func (r *Repository) PollUntilSettled(ctx context.Context, entryID uuid.UUID, interval, budget time.Duration) (PollStatus, *Match, error) {
	return pollUntilSettled(ctx, r, entryID, interval, budget)
}

func pollUntilSettled(ctx context.Context, checker pollChecker, entryID uuid.UUID, interval, budget time.Duration) (PollStatus, *Match, error) {
	deadline := time.Now().Add(budget)
	for {
		status, match, err := checker.PollCheck(ctx, entryID)
		if err != nil {
			return StatusExpired, nil, err
		}
		if status != StatusPending {
			return status, match, nil
		}

		if time.Now().After(deadline) {
			log.Printf("[QUEUE] Poll budget elapsed for entry %s", entryID)
			return StatusExpired, nil, nil
		}
		select {
		case <-ctx.Done():
			return StatusExpired, nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
