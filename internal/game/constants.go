package game

// Timing constants for a versus game.
// These MUST match the frontend's countdown constants exactly.

const (
	// GameDurationSecs is how long each player's personal clock runs.
	GameDurationSecs = 80

	// GameAutoEndSecs is the hard ceiling measured from game creation.
	// It exceeds GameDurationSecs by a grace margin so a player who
	// started late isn't cut off mid-play by the creation-based ceiling.
	GameAutoEndSecs = GameDurationSecs + 30
)

// pointsByLen maps word length to awarded points. Lengths outside the
// table score zero.
var pointsByLen = map[int]int{
	3: 100,
	4: 400,
	5: 800,
	6: 1400,
	7: 1800,
	8: 2200,
}

// PointsForLength returns the points awarded for a word of the given length.
func PointsForLength(length int) int {
	return pointsByLen[length]
}
