package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, name string, ai bool) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type playerRepo interface {
	NextNumber(ctx context.Context) (int64, error)
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type playerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// CreatePlayer - numbers players through the repository counter; an empty name becomes P<number>.
func (that *playerService) CreatePlayer(ctx context.Context, name string, ai bool) (*entity.Player, error) {
	number, err := that.playerRepo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate player number: %w", err)
	}

	suffix := strconv.FormatInt(number, 10)
	if name == "" {
		name = "P" + suffix
	}

	player := &entity.Player{
		ID:   "p" + suffix,
		Name: name,
		AI:   ai,
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	return player, nil
}

func (that *playerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}

	return existingPlayer, nil
}

func (that *playerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}
