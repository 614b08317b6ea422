package tictactoe

import "fmt"

const (
	Size  = 3
	Cells = Size * Size
)

// Position is a linear, row-major cell index:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Position int

const NoPosition Position = -1

// PositionAt - converts (row, col) into a Position, NoPosition if either is out of range.
func PositionAt(row, col int) Position {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return NoPosition
	}

	return Position(row*Size + col)
}

func (that Position) Valid() bool {
	return that >= 0 && that < Cells
}

func (that Position) Row() int {
	return int(that) / Size
}

func (that Position) Col() int {
	return int(that) % Size
}

// String - column letter followed by row digit, e.g. B1 for the center.
func (that Position) String() string {
	if !that.Valid() {
		return fmt.Sprintf("Position(%d)", int(that))
	}

	return fmt.Sprintf("%c%d", 'A'+that.Col(), that.Row())
}

func (that Position) bit() uint16 {
	return 1 << uint(that)
}

type Move struct {
	Position Position `json:"cell"`
	Mark     Mark     `json:"mark"`
}

func (that Move) String() string {
	return that.Mark.String() + that.Position.String()
}
