package searcher

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// DepthForDifficulty maps a 1-5 difficulty setting to a search depth. The
// mapping is monotonic; out-of-range settings are clamped.
func DepthForDifficulty(difficulty int) int {
	if difficulty < MinDifficulty {
		difficulty = MinDifficulty
	}
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}
	return difficulty + 1
}
