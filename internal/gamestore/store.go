// Package gamestore persists versus games and their submitted words in
// Postgres, translating between rows and the game domain types.
package gamestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Levilutz/word-hunt/internal/game"
)

// PlayerSlot names one of the two fixed player columns of a game row.
type PlayerSlot string

const (
	SlotA PlayerSlot = "a"
	SlotB PlayerSlot = "b"
)

// gameRow mirrors the versus_games table.
type gameRow struct {
	ID            uuid.UUID    `db:"id"`
	CreatedAt     time.Time    `db:"created_at"`
	SessionAID    uuid.UUID    `db:"session_a_id"`
	SessionAStart sql.NullTime `db:"session_a_start"`
	SessionADone  bool         `db:"session_a_done"`
	SessionBID    uuid.UUID    `db:"session_b_id"`
	SessionBStart sql.NullTime `db:"session_b_start"`
	SessionBDone  bool         `db:"session_b_done"`
	Grid          game.Grid    `db:"grid"`
}

// wordRow mirrors the versus_game_submitted_words table.
type wordRow struct {
	ID        uuid.UUID     `db:"id"`
	GameID    uuid.UUID     `db:"game_id"`
	SessionID uuid.UUID     `db:"session_id"`
	TilePath  game.TilePath `db:"tile_path"`
	Word      string        `db:"word"`
}

// SubmittedWordRow is one word submission to persist.
type SubmittedWordRow struct {
	ID        uuid.UUID
	GameID    uuid.UUID
	SessionID uuid.UUID
	TilePath  game.TilePath
	Word      string
}

// Store reads and writes versus games.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps the given database handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Create inserts a freshly matched game. The two session ids and the grid
// are fixed for the game's lifetime.
func (s *Store) Create(ctx context.Context, gameID, sessionA, sessionB uuid.UUID, grid game.Grid) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO versus_games (id, created_at, session_a_id, session_b_id, grid)
		VALUES ($1, NOW(), $2, $3, $4)
	`, gameID, sessionA, sessionB, grid)
	if err != nil {
		return fmt.Errorf("failed to create versus game: %w", err)
	}
	return nil
}

// Get loads a game with each player's submitted words, deduped by word
// text. Returns (nil, nil) when the game does not exist.
func (s *Store) Get(ctx context.Context, gameID uuid.UUID) (*game.VersusGame, error) {
	var row gameRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM versus_games WHERE id = $1`, gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get versus game: %w", err)
	}

	var words []wordRow
	err = s.db.SelectContext(ctx, &words, `
		SELECT id, game_id, session_id, tile_path, word
		FROM versus_game_submitted_words
		WHERE game_id = $1
		ORDER BY inserted_at ASC, id ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submitted words: %w", err)
	}

	return &game.VersusGame{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		PlayerA:   buildPlayer(row.SessionAID, row.SessionAStart, row.SessionADone, words),
		PlayerB:   buildPlayer(row.SessionBID, row.SessionBStart, row.SessionBDone, words),
		Grid:      row.Grid,
	}, nil
}

// AwaitGame polls for a game's existence. The waiter side of matching
// needs this: the initiator may not have committed the game row yet when
// the waiter learns its id from the queue.
func (s *Store) AwaitGame(ctx context.Context, gameID uuid.UUID, interval, budget time.Duration) (*game.VersusGame, error) {
	deadline := time.Now().Add(budget)
	for {
		g, err := s.Get(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if g != nil {
			return g, nil
		}

		if time.Now().After(deadline) {
			log.Printf("[GAME] Gave up waiting for game %s to exist", gameID)
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// SetPlayerStart anchors the slot's personal clock, once. Repeat calls
// are no-ops: the conditional update only fires while start is null.
func (s *Store) SetPlayerStart(ctx context.Context, gameID uuid.UUID, slot PlayerSlot) error {
	query, err := slotQuery(slot, `
		UPDATE versus_games
		SET session_{slot}_start = NOW()
		WHERE id = $1 AND session_{slot}_start IS NULL
	`)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, gameID); err != nil {
		return fmt.Errorf("failed to set player start: %w", err)
	}
	return nil
}

// SetPlayerDone marks the slot finished submitting words.
func (s *Store) SetPlayerDone(ctx context.Context, gameID uuid.UUID, slot PlayerSlot) error {
	query, err := slotQuery(slot, `
		UPDATE versus_games
		SET session_{slot}_done = TRUE
		WHERE id = $1
	`)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, gameID); err != nil {
		return fmt.Errorf("failed to set player done: %w", err)
	}
	return nil
}

// InsertWords appends word submissions in one transaction: all rows or
// none. Duplicate texts are allowed at write time and collapsed on read,
// which keeps client retries idempotent.
func (s *Store) InsertWords(ctx context.Context, rows []SubmittedWordRow) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO versus_game_submitted_words (id, game_id, session_id, tile_path, word)
			VALUES ($1, $2, $3, $4, $5)
		`, row.ID, row.GameID, row.SessionID, row.TilePath, row.Word)
		if err != nil {
			return fmt.Errorf("failed to insert submitted word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submitted words: %w", err)
	}
	return nil
}

// SlotOf resolves which player column a session occupies in a game.
func SlotOf(g *game.VersusGame, sessionID uuid.UUID) (PlayerSlot, bool) {
	switch sessionID {
	case g.PlayerA.SessionID:
		return SlotA, true
	case g.PlayerB.SessionID:
		return SlotB, true
	}
	return "", false
}

func buildPlayer(sessionID uuid.UUID, start sql.NullTime, done bool, words []wordRow) game.Player {
	var owned []game.SubmittedWord
	for _, w := range words {
		if w.SessionID == sessionID {
			owned = append(owned, game.SubmittedWord{ID: w.ID, TilePath: w.TilePath, Word: w.Word})
		}
	}
	player := game.Player{
		SessionID: sessionID,
		Done:      done,
		Words:     game.Dedup(owned),
	}
	if start.Valid {
		t := start.Time
		player.Start = &t
	}
	return player
}

// slotQuery fills a slot-parameterized query. The slot is validated here
// because it is spliced into column names, not bound as a parameter.
func slotQuery(slot PlayerSlot, template string) (string, error) {
	if slot != SlotA && slot != SlotB {
		return "", fmt.Errorf("invalid player slot: %q", slot)
	}
	return strings.ReplaceAll(template, "{slot}", string(slot)), nil
}
