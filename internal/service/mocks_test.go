package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type mockSolutionRepo struct {
	mock.Mock
}

func (that *mockSolutionRepo) Get(ctx context.Context, board tictactoe.Board, toMove tictactoe.Mark, maxDepth int) (*entity.Solution, error) {
	args := that.Called(ctx, board, toMove, maxDepth)

	solution, _ := args.Get(0).(*entity.Solution)
	return solution, args.Error(1)
}

func (that *mockSolutionRepo) Save(ctx context.Context, solution *entity.Solution) error {
	return that.Called(ctx, solution).Error(0)
}

type mockPlayerRepo struct {
	mock.Mock
}

func (that *mockPlayerRepo) NextNumber(ctx context.Context) (int64, error) {
	args := that.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (that *mockPlayerRepo) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	return that.Called(ctx, player).Error(0)
}

func (that *mockPlayerRepo) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)

	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}
