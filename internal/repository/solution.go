package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const solutionKeyPrefix = "solution:"

var ErrSolutionNotFound = fmt.Errorf("solution %w", apperror.ErrNotFound)

// SolutionRepository caches solved positions, so the same position is searched once.
type SolutionRepository interface {
	Get(ctx context.Context, board tictactoe.Board, toMove tictactoe.Mark, maxDepth int) (*entity.Solution, error)
	Save(ctx context.Context, solution *entity.Solution) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository - ttl 0 keeps solutions forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSolution) Get(ctx context.Context, board tictactoe.Board, toMove tictactoe.Mark, maxDepth int) (*entity.Solution, error) {
	key := solutionKeyPrefix + entity.SolutionKey(board, toMove, maxDepth)

	response, err := that.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSolutionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	var solution entity.Solution
	if err = json.Unmarshal(response, &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return &solution, nil
}

func (that *dbSolution) Save(ctx context.Context, solution *entity.Solution) error {
	solutionJSON, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	if err = that.client.Set(ctx, solutionKeyPrefix+solution.Key(), solutionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}
