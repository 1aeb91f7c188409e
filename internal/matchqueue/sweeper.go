package matchqueue

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// StartSweeper runs a background job that prunes queue rows well past any
// eligibility window. Retention is purely operational hygiene: matching
// and polling already ignore stale rows, this just keeps the table small.
func StartSweeper(ctx context.Context, db *sqlx.DB, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[SWEEPER] Queue sweeper started (every %v, retention %v)", interval, retention)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[SWEEPER] Queue sweeper stopped")
			return
		case <-ticker.C:
			sweepOnce(ctx, db, retention)
		}
	}
}

func sweepOnce(ctx context.Context, db *sqlx.DB, retention time.Duration) {
	result, err := db.ExecContext(ctx, `
		DELETE FROM versus_match_queue
		WHERE join_time < NOW() - make_interval(secs => $1)
	`, retention.Seconds())
	if err != nil {
		log.Printf("[SWEEPER] Failed to prune queue: %v", err)
		return
	}
	if pruned, err := result.RowsAffected(); err == nil && pruned > 0 {
		log.Printf("[SWEEPER] Pruned %d stale queue entries", pruned)
	}
}
