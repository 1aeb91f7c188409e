package game

import (
	"time"

	"github.com/google/uuid"
)

// VersusGame is the authoritative per-game state. The two player slots'
// session ids are distinct and fixed at creation, and the grid never
// changes after the deal.
type VersusGame struct {
	ID        uuid.UUID
	CreatedAt time.Time
	PlayerA   Player
	PlayerB   Player
	Grid      Grid
}

// OrientedPlayers are the two slots resolved from one session's viewpoint.
type OrientedPlayers struct {
	This  Player
	Other Player
}

// Oriented resolves which slot belongs to the given session. Returns nil
// for a non-participant; every other operation gates on this.
func (g *VersusGame) Oriented(sessionID uuid.UUID) *OrientedPlayers {
	if sessionID == g.PlayerA.SessionID {
		return &OrientedPlayers{This: g.PlayerA, Other: g.PlayerB}
	}
	if sessionID == g.PlayerB.SessionID {
		return &OrientedPlayers{This: g.PlayerB, Other: g.PlayerA}
	}
	return nil
}

// SecsToAutoEnd reports how long until the game force-ends, measured from
// creation. Zero once the ceiling has passed. This ceiling is independent
// of either player's self-declared start.
func (g *VersusGame) SecsToAutoEnd(now time.Time) float64 {
	remaining := GameAutoEndSecs - now.Sub(g.CreatedAt).Seconds()
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// MaySubmit reports whether the given session is still permitted to submit
// words: the auto-end ceiling has not passed, the session is a participant,
// and that player has not declared itself done.
//
// Note this is deliberately independent of PlaySecsRemaining: a player
// whose personal countdown hit zero without declaring done may still
// submit until the ceiling.
func (g *VersusGame) MaySubmit(sessionID uuid.UUID, now time.Time) bool {
	if g.SecsToAutoEnd(now) <= 0 {
		return false
	}
	players := g.Oriented(sessionID)
	if players == nil {
		return false
	}
	return !players.This.Done
}

// Ended reports whether the game is over from the human viewpoint: the
// auto-end ceiling has passed, or both players started and ran their own
// clocks to zero (by countdown or by declaring done). A player who never
// started has no remaining time and can never satisfy the second branch.
func (g *VersusGame) Ended(now time.Time) bool {
	if g.SecsToAutoEnd(now) <= 0 {
		return true
	}
	remainingA, startedA := g.PlayerA.PlaySecsRemaining(now)
	remainingB, startedB := g.PlayerB.PlaySecsRemaining(now)
	return startedA && startedB && remainingA == 0 && remainingB == 0
}

// ExtractWord resolves a tile path against this game's grid.
func (g *VersusGame) ExtractWord(path []Point) (string, bool) {
	return g.Grid.ExtractWord(path)
}
