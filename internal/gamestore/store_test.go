package gamestore

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Levilutz/word-hunt/internal/game"
)

func TestSlotOf(t *testing.T) {
	g := &game.VersusGame{
		PlayerA: game.Player{SessionID: uuid.New()},
		PlayerB: game.Player{SessionID: uuid.New()},
	}

	if slot, ok := SlotOf(g, g.PlayerA.SessionID); !ok || slot != SlotA {
		t.Errorf("expected slot a, got %q (ok=%v)", slot, ok)
	}
	if slot, ok := SlotOf(g, g.PlayerB.SessionID); !ok || slot != SlotB {
		t.Errorf("expected slot b, got %q (ok=%v)", slot, ok)
	}
	if _, ok := SlotOf(g, uuid.New()); ok {
		t.Error("expected non-participant to have no slot")
	}
}

func TestSlotQueryRejectsUnknownSlot(t *testing.T) {
	if _, err := slotQuery("a; DROP TABLE versus_games", "session_{slot}_done"); err == nil {
		t.Error("expected invalid slot to be rejected")
	}
}

func TestBuildPlayerDedupsOwnWordsOnly(t *testing.T) {
	mine := uuid.New()
	theirs := uuid.New()
	rows := []wordRow{
		{ID: uuid.New(), SessionID: mine, Word: "CAT"},
		{ID: uuid.New(), SessionID: theirs, Word: "DOG"},
		{ID: uuid.New(), SessionID: mine, Word: "CAT"},
		{ID: uuid.New(), SessionID: mine, Word: "BIRD"},
	}

	player := buildPlayer(mine, sql.NullTime{}, false, rows)

	if player.Start != nil {
		t.Error("expected null start to stay unset")
	}
	if len(player.Words) != 2 {
		t.Fatalf("expected 2 deduped words, got %d", len(player.Words))
	}
	if player.Words[0].Word != "CAT" || player.Words[1].Word != "BIRD" {
		t.Errorf("expected [CAT BIRD], got [%s %s]", player.Words[0].Word, player.Words[1].Word)
	}
	// The retried CAT row survives, not the first.
	if player.Words[0].ID != rows[2].ID {
		t.Error("expected last CAT submission to win dedup")
	}
}

func TestBuildPlayerStart(t *testing.T) {
	started := time.Now().Add(-10 * time.Second)
	player := buildPlayer(uuid.New(), sql.NullTime{Time: started, Valid: true}, true, nil)

	if player.Start == nil || !player.Start.Equal(started) {
		t.Errorf("expected start %v, got %v", started, player.Start)
	}
	if !player.Done {
		t.Error("expected done flag to carry over")
	}
}
