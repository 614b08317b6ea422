package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error)
}

type solutionRepo interface {
	Get(ctx context.Context, board tictactoe.Board, toMove tictactoe.Mark, maxDepth int) (*entity.Solution, error)
	Save(ctx context.Context, solution *entity.Solution) error
}

type botService struct {
	logger    *slog.Logger
	solutions solutionRepo
	conf      config.Search
}

func NewBotService(logger *slog.Logger, solutions solutionRepo, conf config.Search) BotService {
	return &botService{
		logger:    logger,
		solutions: solutions,
		conf:      conf,
	}
}

// ChooseMove - returns the minimax move for mark, reusing a cached solution when there is one.
// A broken cache only costs a fresh search.
func (that *botService) ChooseMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error) {
	log := that.logger.With("method", "ChooseMove", "board", board.Key(), "mark", mark.String())

	if board.Outcome().IsTerminal() {
		return tictactoe.Move{}, ErrNoAvailableMoves
	}

	solution, err := that.solutions.Get(ctx, board, mark, that.conf.MaxDepth)
	switch {
	case err == nil && solution.HasMove:
		log.Debug("solution found in cache", "move", solution.Move.String(), "value", solution.Value)
		return solution.Move, nil
	case err != nil && !errors.Is(err, apperror.ErrNotFound):
		log.Warn("could not read cached solution", "error", err)
	}

	searchCtx := ctx
	if that.conf.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, that.conf.Timeout)
		defer cancel()
	}

	result, err := minimax.SearchContext(searchCtx, board, mark, that.searchOptions()...)
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("bot failed to search: %w", err)
	}

	if !result.HasMove {
		return tictactoe.Move{}, ErrNoAvailableMoves
	}

	log.Debug("position solved", "move", result.Move.String(), "value", result.Value, "nodes", result.Nodes)

	solution = &entity.Solution{
		Board:    board,
		ToMove:   mark,
		MaxDepth: that.conf.MaxDepth,
		Move:     result.Move,
		HasMove:  result.HasMove,
		Value:    result.Value,
	}

	if err = that.solutions.Save(ctx, solution); err != nil {
		log.Warn("could not cache solution", "error", err)
	}

	return result.Move, nil
}

func (that *botService) searchOptions() []minimax.Option {
	opts := []minimax.Option{minimax.WithMaxDepth(that.conf.MaxDepth)}

	if that.conf.AlphaBeta {
		opts = append(opts, minimax.WithAlphaBeta())
	}

	if that.conf.Parallel {
		opts = append(opts, minimax.WithParallel())
	}

	return opts
}
