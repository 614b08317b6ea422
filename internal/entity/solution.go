package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Solution is a solved position as the bot stores it. Results of depth-limited
// searches are kept apart from exhaustive ones (MaxDepth 0).
type Solution struct {
	Board    tictactoe.Board `json:"board"`
	ToMove   tictactoe.Mark  `json:"to_move"`
	MaxDepth int             `json:"max_depth,omitempty"`
	Move     tictactoe.Move  `json:"move"`
	HasMove  bool            `json:"has_move"`
	Value    int8            `json:"value"`
}

func (that *Solution) Key() string {
	return SolutionKey(that.Board, that.ToMove, that.MaxDepth)
}

func SolutionKey(board tictactoe.Board, toMove tictactoe.Mark, maxDepth int) string {
	return fmt.Sprintf("%s:%d:%s", toMove, maxDepth, board.Key())
}
