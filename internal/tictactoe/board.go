package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

const (
	fullBoard uint16 = 1<<Cells - 1

	emptyKey  = '.'
	emptyCell = ""
)

var (
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrBoardDecided = errors.New("board is already decided")
	ErrInvalidBoard = errors.New("invalid board")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	winMasks = comboMasks(WinCombos)
)

func comboMasks(combos [][3]int) []uint16 {
	masks := make([]uint16, 0, len(combos))
	for _, combo := range combos {
		var mask uint16
		for _, cell := range combo {
			mask |= Position(cell).bit()
		}
		masks = append(masks, mask)
	}

	return masks
}

// Board holds one bit channel per mark. The zero value is an empty board.
type Board struct {
	bits [2]uint16
}

// Place - puts move.Mark on move.Position. Turn order is not checked here.
func (that *Board) Place(move Move) error {
	if !move.Position.Valid() {
		return fmt.Errorf("%w: cell %d", ErrOutOfBounds, move.Position)
	}

	if !move.Mark.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMark, uint8(move.Mark))
	}

	if that.occupied()&move.Position.bit() != 0 {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, move.Position)
	}

	if outcome := that.Outcome(); outcome.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrBoardDecided, outcome)
	}

	that.bits[move.Mark] |= move.Position.bit()

	return nil
}

// Outcome - checks every winning line before checking for a full board.
func (that Board) Outcome() Outcome {
	for _, mask := range winMasks {
		if that.bits[First]&mask == mask {
			return FirstWins
		}
		if that.bits[Second]&mask == mask {
			return SecondWins
		}
	}

	if that.occupied() == fullBoard {
		return Draw
	}

	return StillPlaying
}

// LegalMoves - one move per empty cell in ascending position order.
func (that Board) LegalMoves(mark Mark) []Move {
	free := ^that.occupied() & fullBoard

	moves := make([]Move, 0, bits.OnesCount16(free))
	for free != 0 {
		moves = append(moves, Move{Position: Position(bits.TrailingZeros16(free)), Mark: mark})
		free &= free - 1
	}

	return moves
}

func (that Board) Clone() Board {
	return that
}

// At - reports the mark on pos, false when the cell is empty or pos is out of bounds.
func (that Board) At(pos Position) (Mark, bool) {
	if !pos.Valid() {
		return 0, false
	}

	switch {
	case that.bits[First]&pos.bit() != 0:
		return First, true
	case that.bits[Second]&pos.bit() != 0:
		return Second, true
	default:
		return 0, false
	}
}

func (that Board) Count(mark Mark) int {
	if !mark.Valid() {
		return 0
	}

	return bits.OnesCount16(that.bits[mark])
}

func (that Board) Occupied() int {
	return bits.OnesCount16(that.occupied())
}

func (that Board) IsEmpty() bool {
	return that.occupied() == 0
}

// MarkToMove - First when both sides placed the same number of marks.
func (that Board) MarkToMove() Mark {
	if that.Count(First) == that.Count(Second) {
		return First
	}
	return Second
}

// Consistent - reports whether the mark counts could come from alternating play.
func (that Board) Consistent() bool {
	diff := that.Count(First) - that.Count(Second)
	return diff == 0 || diff == 1
}

func (that Board) occupied() uint16 {
	return that.bits[First] | that.bits[Second]
}

// Key - nine characters, X/O for marks and '.' for empty cells.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(Cells)

	for pos := range Position(Cells) {
		mark, ok := that.At(pos)
		if !ok {
			sb.WriteByte(emptyKey)
			continue
		}
		sb.WriteString(mark.String())
	}

	return sb.String()
}

// ParseBoard - reverse of Key.
func ParseBoard(key string) (Board, error) {
	var board Board

	if len(key) != Cells {
		return board, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Cells, len(key))
	}

	for i := range Cells {
		if key[i] == emptyKey {
			continue
		}

		mark, err := ParseMark(key[i : i+1])
		if err != nil {
			return Board{}, fmt.Errorf("%w: cell %d: %w", ErrInvalidBoard, i, err)
		}

		board.bits[mark] |= Position(i).bit()
	}

	return board, nil
}

func (that Board) String() string {
	key := that.Key()

	rows := make([]string, 0, Size)
	for row := range Size {
		rows = append(rows, key[row*Size:(row+1)*Size])
	}

	return strings.Join(rows, "\n")
}

func (that Board) MarshalJSON() ([]byte, error) {
	var cells [Cells]string
	for pos := range Position(Cells) {
		if mark, ok := that.At(pos); ok {
			cells[pos] = mark.String()
		}
	}

	return json.Marshal(cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells [Cells]string
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	var board Board
	for i, cell := range cells {
		if cell == emptyCell {
			continue
		}

		mark, err := ParseMark(cell)
		if err != nil {
			return fmt.Errorf("%w: cell %d: %w", ErrInvalidBoard, i, err)
		}

		board.bits[mark] |= Position(i).bit()
	}

	*that = board

	return nil
}
