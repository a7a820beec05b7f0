package game

// Evaluate scores a state from side's perspective: positive favors side,
// negative favors the opponent. Evaluations must be pure and deterministic.
type Evaluate func(gs *GameState, side CellState) int

// weights is the positional value of each cell: corners dominate, the
// X- and C-squares next to them are liabilities because they hand the
// corner to the opponent. The table is symmetric under the board's
// rotations and reflections and is shared read-only across all searches.
var weights = [BoardSize][BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EvaluatePositional sums the weight table over side's discs minus the
// opponent's.
func EvaluatePositional(gs *GameState, side CellState) int {
	opponent := Opponent(side)
	score := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch gs.Board.cells[row][col] {
			case side:
				score += weights[row][col]
			case opponent:
				score -= weights[row][col]
			}
		}
	}
	return score
}

// EvaluateWeighted adds a small disc-differential term to the positional
// score so the agent does not ignore material entirely.
func EvaluateWeighted(gs *GameState, side CellState) int {
	score := EvaluatePositional(gs, side)
	return score + 2*(gs.Board.Count(side)-gs.Board.Count(Opponent(side)))
}
