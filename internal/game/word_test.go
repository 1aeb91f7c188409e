package game

import (
	"testing"

	"github.com/google/uuid"
)

func TestPointsForLength(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{2, 0},
		{3, 100},
		{4, 400},
		{5, 800},
		{6, 1400},
		{7, 1800},
		{8, 2200},
		{9, 0},
		{0, 0},
	}
	for _, c := range cases {
		if got := PointsForLength(c.length); got != c.want {
			t.Errorf("PointsForLength(%d) = %d, want %d", c.length, got, c.want)
		}
	}
}

func submitted(word string) SubmittedWord {
	return SubmittedWord{ID: uuid.New(), Word: word}
}

func TestDedupKeepsOnePerText(t *testing.T) {
	catA := submitted("CAT")
	catB := submitted("CAT")
	dog := submitted("DOG")

	deduped := Dedup([]SubmittedWord{catA, catB, dog})

	if len(deduped) != 2 {
		t.Fatalf("expected 2 words after dedup, got %d", len(deduped))
	}
	if deduped[0].Word != "CAT" || deduped[1].Word != "DOG" {
		t.Errorf("expected insertion order [CAT DOG], got [%s %s]", deduped[0].Word, deduped[1].Word)
	}
	// Last instance of a repeated text wins.
	if deduped[0].ID != catB.ID {
		t.Errorf("expected later CAT submission to survive dedup")
	}
}

func TestDedupEmpty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}

func TestPlayerPoints(t *testing.T) {
	player := Player{Words: []SubmittedWord{
		submitted("CAT"),      // 100
		submitted("BIRD"),     // 400
		submitted("AB"),       // 0, below table
		submitted("AARDVARK"), // 2200
	}}

	if got := player.Points(); got != 2700 {
		t.Errorf("expected 2700 points, got %d", got)
	}
}
