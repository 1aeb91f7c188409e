package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Levilutz/word-hunt/internal/config"
	"github.com/Levilutz/word-hunt/internal/game"
	"github.com/Levilutz/word-hunt/internal/gamestore"
	"github.com/Levilutz/word-hunt/internal/middleware"
)

// playerView is one side of the oriented game response.
type playerView struct {
	Points        int      `json:"points"`
	Words         []string `json:"words"`
	SecsRemaining *float64 `json:"secs_remaining"`
	Done          bool     `json:"done"`
}

// loadOrientedGame pulls the game and authorizes the caller: 404 for an
// unknown game id, 403 for a non-participant. Returns nils after writing
// the error response.
func loadOrientedGame(c *gin.Context, games *gamestore.Store, sessionID uuid.UUID) (*game.VersusGame, *game.OrientedPlayers) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return nil, nil
	}

	g, err := games.Get(c.Request.Context(), gameID)
	if err != nil {
		log.Printf("[GAME] Failed to load game %s: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load game"})
		return nil, nil
	}
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return nil, nil
	}

	players := g.Oriented(sessionID)
	if players == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant in this game"})
		return nil, nil
	}
	return g, players
}

// GetGame returns the full oriented view of a game: the grid, whether the
// game has ended, and each player's countdown, points and caught words.
func GetGame(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	games := gamestore.NewStore(db)

	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			return
		}

		g, players := loadOrientedGame(c, games, sessionID)
		if g == nil {
			return
		}
		now := time.Now()

		c.JSON(http.StatusOK, gin.H{
			"game_id":          g.ID,
			"grid":             g.Grid,
			"ended":            g.Ended(now),
			"secs_to_auto_end": g.SecsToAutoEnd(now),
			"this_player":      buildPlayerView(players.This, now),
			"other_player":     buildPlayerView(players.Other, now),
		})
	}
}

// StartGame anchors the caller's personal countdown. Idempotent: the
// clock only ever starts once.
func StartGame(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	games := gamestore.NewStore(db)

	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			return
		}

		g, _ := loadOrientedGame(c, games, sessionID)
		if g == nil {
			return
		}

		slot, _ := gamestore.SlotOf(g, sessionID)
		if err := games.SetPlayerStart(c.Request.Context(), g.ID, slot); err != nil {
			log.Printf("[GAME] Failed to start player %s in game %s: %v", sessionID, g.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "started"})
	}
}

// SubmitWords validates and records a batch of tile paths for the caller.
// A submission attempt counts as starting the clock, even if a path turns
// out invalid. The insert is all rows or none.
func SubmitWords(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	games := gamestore.NewStore(db)

	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			return
		}

		var req struct {
			Paths []game.TilePath `json:"paths"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if len(req.Paths) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no paths provided"})
			return
		}

		g, _ := loadOrientedGame(c, games, sessionID)
		if g == nil {
			return
		}
		ctx := c.Request.Context()
		slot, _ := gamestore.SlotOf(g, sessionID)

		// Submitting is the implicit start signal.
		if err := games.SetPlayerStart(ctx, g.ID, slot); err != nil {
			log.Printf("[GAME] Failed to start player %s in game %s: %v", sessionID, g.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit"})
			return
		}

		if !g.MaySubmit(sessionID, time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "submissions no longer accepted"})
			return
		}

		// Resolve every path against the grid before writing anything.
		rows := make([]gamestore.SubmittedWordRow, 0, len(req.Paths))
		for i, path := range req.Paths {
			word, valid := g.ExtractWord(path)
			if !valid {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("path %d invalid", i)})
				return
			}
			// TODO: validate word against a dictionary
			rows = append(rows, gamestore.SubmittedWordRow{
				ID:        uuid.New(),
				GameID:    g.ID,
				SessionID: sessionID,
				TilePath:  path,
				Word:      word,
			})
		}

		if err := games.InsertWords(ctx, rows); err != nil {
			log.Printf("[GAME] Failed to insert %d words for game %s: %v", len(rows), g.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"submitted": len(rows)})
	}
}

// DeclareDone marks the caller finished submitting words for the game.
func DeclareDone(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	games := gamestore.NewStore(db)

	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			return
		}

		g, _ := loadOrientedGame(c, games, sessionID)
		if g == nil {
			return
		}

		slot, _ := gamestore.SlotOf(g, sessionID)
		if err := games.SetPlayerDone(c.Request.Context(), g.ID, slot); err != nil {
			log.Printf("[GAME] Failed to mark player %s done in game %s: %v", sessionID, g.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to declare done"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "done"})
	}
}

func buildPlayerView(p game.Player, now time.Time) playerView {
	words := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		words = append(words, w.Word)
	}

	view := playerView{
		Points: p.Points(),
		Words:  words,
		Done:   p.Done,
	}
	if remaining, started := p.PlaySecsRemaining(now); started {
		view.SecsRemaining = &remaining
	}
	return view
}
