// Package matchqueue pairs anonymous sessions for versus games through a
// durable Postgres queue. All coordination state lives in the queue table,
// so any number of stateless service instances can match safely against
// the same database.
package matchqueue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	// MatchWindowSecs is how long a queue entry stays eligible for
	// matching by other sessions.
	MatchWindowSecs = 15

	// PollWindowSecs is how long a session keeps polling its own entry
	// before it is told to give up. Strictly longer than the match window:
	// better to keep checking when hopeless than to expire concurrent with
	// someone matching us.
	PollWindowSecs = 20
)

// Entry is one row on the match queue. Rejoining creates a fresh entry,
// so the id is unique per join rather than per session.
type Entry struct {
	ID               uuid.UUID    `db:"id"`
	SessionID        uuid.UUID    `db:"session_id"`
	JoinTime         time.Time    `db:"join_time"`
	GameID           *uuid.UUID   `db:"game_id"`
	PartnerSessionID *uuid.UUID   `db:"partner_session_id"`
	MatchTime        sql.NullTime `db:"match_time"`
}

// Match is a settled pairing: the game both sessions will share and the
// session on the other side of it.
type Match struct {
	GameID           uuid.UUID
	PartnerSessionID uuid.UUID
}

// PollStatus is the state of a session's own queue entry.
type PollStatus int

const (
	// StatusPending means the entry exists but has no match yet.
	StatusPending PollStatus = iota
	// StatusMatched means the entry was claimed and carries a game id.
	StatusMatched
	// StatusExpired means the entry aged out (or never existed); the
	// session must re-enter the queue.
	StatusExpired
)

// Repository coordinates queue rows in Postgres.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps the given database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Join inserts a fresh queue entry for the session and returns its id.
// Repeat joins are cheap and harmless: matching only ever considers
// entries inside the match window.
func (r *Repository) Join(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	entryID := uuid.New()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO versus_match_queue (id, session_id, join_time)
		VALUES ($1, $2, NOW())
	`, entryID, sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to join match queue: %w", err)
	}
	return entryID, nil
}

// AttemptMatch tries to claim the oldest eligible entry on the queue for
// this session. The claim is a single conditional UPDATE ... RETURNING
// over a FOR UPDATE SKIP LOCKED subselect, so no two concurrent attempts
// can observe or claim the same row. A nil result means nobody was
// waiting.
//
// The caller that receives a Match is the initiator and must construct
// the game; the claimed entry's owner only learns the game id via
// PollCheck.
func (r *Repository) AttemptMatch(ctx context.Context, sessionID uuid.UUID) (*Match, error) {
	gameID := uuid.New()

	var claimed Entry
	err := r.db.GetContext(ctx, &claimed, `
		UPDATE versus_match_queue
		SET game_id = $1, partner_session_id = $2, match_time = NOW()
		WHERE id = (
				SELECT id FROM versus_match_queue
				WHERE join_time > NOW() - make_interval(secs => $3)
					AND game_id IS NULL
					AND session_id != $2
				ORDER BY join_time ASC
				LIMIT 1
				FOR UPDATE SKIP LOCKED
			)
			AND join_time > NOW() - make_interval(secs => $3)
			AND game_id IS NULL
			AND session_id != $2
		RETURNING *
	`, gameID, sessionID, MatchWindowSecs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to attempt match: %w", err)
	}

	return &Match{GameID: gameID, PartnerSessionID: claimed.SessionID}, nil
}

// PollCheck reads the session's own queue entry. Expired means the entry
// is gone or aged past the poll window; Matched means another session
// claimed it (the caller must NOT construct the game, only fetch it).
func (r *Repository) PollCheck(ctx context.Context, entryID uuid.UUID) (PollStatus, *Match, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry, `
		SELECT * FROM versus_match_queue
		WHERE id = $1
			AND join_time > NOW() - make_interval(secs => $2)
	`, entryID, PollWindowSecs)
	if errors.Is(err, sql.ErrNoRows) {
		return StatusExpired, nil, nil
	}
	if err != nil {
		return StatusPending, nil, fmt.Errorf("failed to check queue entry: %w", err)
	}

	if entry.GameID == nil {
		return StatusPending, nil, nil
	}
	if entry.PartnerSessionID == nil {
		return StatusPending, nil, fmt.Errorf("queue entry %s matched without a partner", entryID)
	}
	return StatusMatched, &Match{GameID: *entry.GameID, PartnerSessionID: *entry.PartnerSessionID}, nil
}
