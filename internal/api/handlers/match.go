package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Levilutz/word-hunt/internal/config"
	"github.com/Levilutz/word-hunt/internal/game"
	"github.com/Levilutz/word-hunt/internal/gamestore"
	"github.com/Levilutz/word-hunt/internal/matchqueue"
	"github.com/Levilutz/word-hunt/internal/middleware"
)

// Lifetime counters kept in Redis, best-effort, for the status endpoint.
const (
	statJoins   = "wordhunt:queue:joins"
	statMatches = "wordhunt:queue:matches"
)

// Match attempts to pair the caller with a waiting session. The caller
// either claims a waiting entry (and constructs the game), or joins the
// queue and polls its own entry until matched or expired. A null game_id
// is a normal outcome; the client re-invokes /match to keep waiting.
func Match(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	queue := matchqueue.NewRepository(db)
	games := gamestore.NewStore(db)
	interval := time.Duration(cfg.MatchPollIntervalMS) * time.Millisecond
	pollBudget := time.Duration(cfg.MatchPollBudgetSecs) * time.Second
	awaitBudget := time.Duration(cfg.GameAwaitBudgetSecs) * time.Second

	return func(c *gin.Context) {
		sessionID, ok := middleware.SessionID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()

		// First, try to claim a waiting session off the queue.
		match, err := queue.AttemptMatch(ctx, sessionID)
		if err != nil {
			log.Printf("[MATCH] Attempt failed for session %s: %v", sessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "matchmaking unavailable"})
			return
		}
		if match != nil {
			// We claimed the entry, so constructing the game is on us.
			grid := game.RandomTemplateGrid()
			if err := games.Create(ctx, match.GameID, match.PartnerSessionID, sessionID, grid); err != nil {
				log.Printf("[MATCH] Failed to create game %s: %v", match.GameID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
				return
			}
			bumpStat(c, rdb, statMatches)
			log.Printf("[MATCH] Session %s matched with %s (game %s)", sessionID, match.PartnerSessionID, match.GameID)
			c.JSON(http.StatusOK, gin.H{"game_id": match.GameID})
			return
		}

		// Nobody was waiting: join the queue and poll our own entry.
		entryID, err := queue.Join(ctx, sessionID)
		if err != nil {
			log.Printf("[MATCH] Join failed for session %s: %v", sessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "matchmaking unavailable"})
			return
		}
		bumpStat(c, rdb, statJoins)

		status, match, err := queue.PollUntilSettled(ctx, entryID, interval, pollBudget)
		if err != nil {
			log.Printf("[MATCH] Poll failed for entry %s: %v", entryID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "matchmaking unavailable"})
			return
		}
		if status != matchqueue.StatusMatched {
			// Expired: not an error, the client should call /match again.
			c.JSON(http.StatusOK, gin.H{"game_id": nil})
			return
		}

		// The initiator constructs the game in a separate request, so it
		// may not be committed yet. Wait for it with the same discipline.
		matchedGame, err := games.AwaitGame(ctx, match.GameID, interval, awaitBudget)
		if err != nil {
			log.Printf("[MATCH] Await game %s failed: %v", match.GameID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "matchmaking unavailable"})
			return
		}
		if matchedGame == nil {
			log.Printf("[MATCH] Game %s never appeared for entry %s", match.GameID, entryID)
			c.JSON(http.StatusOK, gin.H{"game_id": nil})
			return
		}

		log.Printf("[MATCH] Session %s matched into game %s (waiter side)", sessionID, match.GameID)
		c.JSON(http.StatusOK, gin.H{"game_id": match.GameID})
	}
}

// MatchStatus reports the live queue depth from the database and the
// lifetime join/match counters from Redis.
func MatchStatus(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var waiting int
		err := db.GetContext(ctx, &waiting, `
			SELECT COUNT(*) FROM versus_match_queue
			WHERE game_id IS NULL
				AND join_time > NOW() - make_interval(secs => $1)
		`, matchqueue.MatchWindowSecs)
		if err != nil {
			log.Printf("[MATCH] Failed to count waiting sessions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status unavailable"})
			return
		}

		joins, _ := rdb.Get(ctx, statJoins).Int64()
		matches, _ := rdb.Get(ctx, statMatches).Int64()

		c.JSON(http.StatusOK, gin.H{
			"waiting":       waiting,
			"total_joins":   joins,
			"total_matches": matches,
		})
	}
}

// bumpStat increments a lifetime counter. Stats are best-effort and never
// fail a request.
func bumpStat(c *gin.Context, rdb *redis.Client, key string) {
	if rdb == nil {
		return
	}
	if err := rdb.Incr(c.Request.Context(), key).Err(); err != nil {
		log.Printf("[MATCH] Failed to bump %s: %v", key, err)
	}
}
