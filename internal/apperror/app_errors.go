package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotInGame        = errors.New("player is not in this game")
	ErrNotFound         = errors.New("not found")
	ErrNoBotToMove      = errors.New("side to move is not played by the engine")
)
