package matchqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// scriptedChecker returns a fixed sequence of poll results, repeating the
// last one once the script runs out.
type scriptedChecker struct {
	results []pollResult
	calls   int
}

type pollResult struct {
	status PollStatus
	match  *Match
	err    error
}

func (c *scriptedChecker) PollCheck(_ context.Context, _ uuid.UUID) (PollStatus, *Match, error) {
	i := c.calls
	if i >= len(c.results) {
		i = len(c.results) - 1
	}
	c.calls++
	result := c.results[i]
	return result.status, result.match, result.err
}

func TestPollUntilSettledMatched(t *testing.T) {
	match := &Match{GameID: uuid.New(), PartnerSessionID: uuid.New()}
	checker := &scriptedChecker{results: []pollResult{
		{status: StatusPending},
		{status: StatusPending},
		{status: StatusMatched, match: match},
	}}

	status, got, err := pollUntilSettled(context.Background(), checker, uuid.New(), time.Millisecond, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusMatched {
		t.Fatalf("expected matched, got %v", status)
	}
	if got.GameID != match.GameID {
		t.Errorf("expected game id %s, got %s", match.GameID, got.GameID)
	}
}

func TestPollUntilSettledExpiredEntry(t *testing.T) {
	checker := &scriptedChecker{results: []pollResult{
		{status: StatusPending},
		{status: StatusExpired},
	}}

	status, match, err := pollUntilSettled(context.Background(), checker, uuid.New(), time.Millisecond, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusExpired || match != nil {
		t.Errorf("expected expired with no match, got %v %v", status, match)
	}
}

func TestPollUntilSettledBudgetElapses(t *testing.T) {
	checker := &scriptedChecker{results: []pollResult{
		{status: StatusPending},
	}}

	status, _, err := pollUntilSettled(context.Background(), checker, uuid.New(), time.Millisecond, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusExpired {
		t.Errorf("expected synthesized expiry after budget, got %v", status)
	}
	if checker.calls == 0 {
		t.Error("expected the loop to keep checking until the budget elapsed")
	}
}

func TestPollUntilSettledRespectsContext(t *testing.T) {
	checker := &scriptedChecker{results: []pollResult{
		{status: StatusPending},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, _, err := pollUntilSettled(ctx, checker, uuid.New(), time.Second, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if status != StatusExpired {
		t.Errorf("expected expired on cancellation, got %v", status)
	}
}

func TestPollUntilSettledSurfacesCheckError(t *testing.T) {
	boom := errors.New("connection lost")
	checker := &scriptedChecker{results: []pollResult{
		{status: StatusPending, err: boom},
	}}

	_, _, err := pollUntilSettled(context.Background(), checker, uuid.New(), time.Millisecond, time.Second)
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}
}

func TestWindowAsymmetry(t *testing.T) {
	// A session about to be matched must still look eligible to its own
	// poll, so the poll window has to exceed the match window.
	if PollWindowSecs <= MatchWindowSecs {
		t.Errorf("poll window (%d) must be strictly longer than match window (%d)", PollWindowSecs, MatchWindowSecs)
	}
}
