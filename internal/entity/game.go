package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const maxPlayers = 2

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrGameIsFull        = errors.New("game already has two players")
)

// Game is a match between two players. The board is the only source of the
// outcome, Status tracks the lifecycle around it.
type Game struct {
	ID      string           `json:"id"`
	Board   tictactoe.Board  `json:"board"`
	Turn    tictactoe.Mark   `json:"player_turn"`
	Status  string           `json:"status"`
	Players []*Player        `json:"players,omitempty"`
	Moves   []tictactoe.Move `json:"moves,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   tictactoe.First,
		Status: StatusWaiting,
	}
}

// AddPlayer - seats the player on the next free side; the game starts once both sides are taken.
func (that *Game) AddPlayer(player *Player) error {
	if len(that.Players) >= maxPlayers {
		return fmt.Errorf("%w: game id %s", ErrGameIsFull, that.ID)
	}

	player.Mark = tictactoe.First
	if len(that.Players) == 1 {
		player.Mark = tictactoe.Second
	}
	player.GameID = that.ID

	that.Players = append(that.Players, player)

	if len(that.Players) == maxPlayers {
		that.Status = StatusOngoing
	}

	return nil
}

func (that *Game) Outcome() tictactoe.Outcome {
	return that.Board.Outcome()
}

func (that *Game) UpdateGameState() {
	if that.Outcome().IsTerminal() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(mark tictactoe.Mark, pos tictactoe.Position) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	move := tictactoe.Move{Position: pos, Mark: mark}
	if err := that.Board.Place(move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Moves = append(that.Moves, move)
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) PlayerByMark(mark tictactoe.Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// PlayerToMove - nil when the game has no player on the side to move.
func (that *Game) PlayerToMove() *Player {
	return that.PlayerByMark(that.Turn)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
