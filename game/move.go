package game

import "fmt"

// Move is a board coordinate a side wants to play on.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Square returns the move's coordinate as a Square.
func (m Move) Square() Square {
	return Square{Row: m.Row, Col: m.Col}
}
