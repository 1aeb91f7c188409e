package game

import "github.com/google/uuid"

// SubmittedWord is one word a player caught along a tile path. The word
// text is derived from the path at submission time, not trusted from the
// client.
type SubmittedWord struct {
	ID       uuid.UUID
	TilePath TilePath
	Word     string
}

// Points returns the score for this word's length.
func (w SubmittedWord) Points() int {
	return PointsForLength(len(w.Word))
}

// Dedup collapses repeat catches of the same word text, keeping one entry
// per distinct text. Insertion order is preserved and the last instance of
// a text wins, so retried submissions replace rather than duplicate.
func Dedup(words []SubmittedWord) []SubmittedWord {
	deduped := make([]SubmittedWord, 0, len(words))
	index := make(map[string]int, len(words))
	for _, w := range words {
		if i, seen := index[w.Word]; seen {
			deduped[i] = w
			continue
		}
		index[w.Word] = len(deduped)
		deduped = append(deduped, w)
	}
	return deduped
}
