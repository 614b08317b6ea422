package entity

import "github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"

type Player struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Mark   tictactoe.Mark `json:"mark"`
	AI     bool           `json:"ai,omitempty"`
	GameID string         `json:"game_id,omitempty"`
	Wins   int            `json:"wins"`
	Losses int            `json:"losses"`
	Draws  int            `json:"draws"`
}

func (that *Player) IsBot() bool {
	return that.AI
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}

// RecordResult - updates the tallies from a finished game and leaves it.
func (that *Player) RecordResult(outcome tictactoe.Outcome) {
	if !outcome.IsTerminal() {
		return
	}

	winner, ok := outcome.Winner()
	switch {
	case !ok:
		that.Draws++
	case winner == that.Mark:
		that.Wins++
	default:
		that.Losses++
	}

	that.GameID = ""
}
