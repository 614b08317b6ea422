package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// GameUseCase is what outer layers (the match runner today) drive games through.
type GameUseCase interface {
	RegisterPlayer(ctx context.Context, name string, ai bool) (*entity.Player, error)

	StartGame(ctx context.Context, firstID, secondID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID, playerID string, pos tictactoe.Position) (*entity.Game, error)
	PlayBotTurn(ctx context.Context, gameID string) (*entity.Game, error)
	PlayOut(ctx context.Context, gameID string) (*entity.Game, error)

	CleanupGame(ctx context.Context, gameID string) error
}

type playerService interface {
	CreatePlayer(ctx context.Context, name string, ai bool) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type gameRepo interface {
	NextID(ctx context.Context) (string, error)
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	ChooseMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error)
}

var _ GameUseCase = (*GameManager)(nil)
