// Package render draws boards and finished games for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	firstColor  = "1" // red
	secondColor = "4" // blue
	emptyCell   = "."
)

type Renderer struct {
	output *termenv.Output
}

// New - the colour profile is detected from w unless noColor forces plain text.
func New(w io.Writer, noColor bool) *Renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Board - column letters on top, row digits on the left, as in move notation.
func (that *Renderer) Board(board tictactoe.Board) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := range tictactoe.Size {
		sb.WriteString(" ")
		sb.WriteByte(byte('A' + col))
	}
	sb.WriteString("\n")

	for row := range tictactoe.Size {
		fmt.Fprintf(&sb, "%d ", row)
		for col := range tictactoe.Size {
			sb.WriteString(" ")
			sb.WriteString(that.cell(board, tictactoe.PositionAt(row, col)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Status - one line describing who is to move or how the game ended.
func (that *Renderer) Status(game *entity.Game) string {
	outcome := game.Outcome()

	winner, ok := outcome.Winner()
	switch {
	case ok:
		return fmt.Sprintf("%s wins (%s)", that.mark(winner), playerName(game, winner))
	case outcome == tictactoe.Draw:
		return that.output.String("draw").Bold().String()
	default:
		return fmt.Sprintf("%s to move (%s)", that.mark(game.Turn), playerName(game, game.Turn))
	}
}

// Moves - the move list in notation, e.g. "XB1 OA0".
func (that *Renderer) Moves(moves []tictactoe.Move) string {
	line := make([]string, 0, len(moves))
	for _, move := range moves {
		line = append(line, that.mark(move.Mark)+move.Position.String())
	}

	return strings.Join(line, " ")
}

// Game - writes the board, the move list and the status line.
func (that *Renderer) Game(game *entity.Game) error {
	_, err := fmt.Fprintf(that.output, "game %s\n%s%s\n%s\n",
		game.ID, that.Board(game.Board), that.Moves(game.Moves), that.Status(game))
	if err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

func (that *Renderer) cell(board tictactoe.Board, pos tictactoe.Position) string {
	mark, ok := board.At(pos)
	if !ok {
		return that.output.String(emptyCell).Faint().String()
	}

	return that.mark(mark)
}

func (that *Renderer) mark(mark tictactoe.Mark) string {
	color := firstColor
	if mark == tictactoe.Second {
		color = secondColor
	}

	return that.output.String(mark.String()).Foreground(that.output.Color(color)).Bold().String()
}

func playerName(game *entity.Game, mark tictactoe.Mark) string {
	player := game.PlayerByMark(mark)
	if player == nil {
		return "nobody"
	}

	return player.Name
}
