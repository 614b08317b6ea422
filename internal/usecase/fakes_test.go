package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// memoryStore keeps JSON copies, so callers never share pointers with the store, as with Redis.
type memoryStore struct {
	mu      sync.Mutex
	seq     int
	games   map[string][]byte
	players map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		games:   make(map[string][]byte),
		players: make(map[string][]byte),
	}
}

func (that *memoryStore) NextID(_ context.Context) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.seq++

	return "g" + strconv.Itoa(that.seq), nil
}

func (that *memoryStore) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	return that.put(that.games, game.ID, game)
}

func (that *memoryStore) GetByID(_ context.Context, id string) (*entity.Game, error) {
	var game entity.Game
	if err := that.get(that.games, id, &game); err != nil {
		return nil, fmt.Errorf("game %w", err)
	}

	return &game, nil
}

func (that *memoryStore) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("game %w", apperror.ErrNotFound)
	}
	delete(that.games, id)

	return nil
}

func (that *memoryStore) put(bucket map[string][]byte, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	bucket[id] = data

	return nil
}

func (that *memoryStore) get(bucket map[string][]byte, id string, v any) error {
	that.mu.Lock()
	data, ok := bucket[id]
	that.mu.Unlock()

	if !ok {
		return apperror.ErrNotFound
	}

	return json.Unmarshal(data, v)
}

// memoryPlayers implements playerService on top of the same store.
type memoryPlayers struct {
	store *memoryStore
	seq   int
}

func (that *memoryPlayers) CreatePlayer(ctx context.Context, name string, ai bool) (*entity.Player, error) {
	that.seq++

	player := &entity.Player{ID: "p" + strconv.Itoa(that.seq), Name: name, AI: ai}

	return player, that.UpdatePlayer(ctx, player)
}

func (that *memoryPlayers) GetPlayerByID(_ context.Context, id string) (*entity.Player, error) {
	var player entity.Player
	if err := that.store.get(that.store.players, id, &player); err != nil {
		return nil, fmt.Errorf("player %w", err)
	}

	return &player, nil
}

func (that *memoryPlayers) UpdatePlayer(_ context.Context, player *entity.Player) error {
	return that.store.put(that.store.players, player.ID, player)
}

// minimaxBot searches directly, without a solution cache.
type minimaxBot struct{}

func (minimaxBot) ChooseMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error) {
	result, err := minimax.SearchContext(ctx, board, mark, minimax.WithAlphaBeta())
	if err != nil {
		return tictactoe.Move{}, err
	}

	return result.Move, nil
}

type mockBot struct {
	mock.Mock
}

func (that *mockBot) ChooseMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error) {
	args := that.Called(ctx, board, mark)

	return args.Get(0).(tictactoe.Move), args.Error(1)
}

type mockPlayerService struct {
	mock.Mock
}

func (that *mockPlayerService) CreatePlayer(ctx context.Context, name string, ai bool) (*entity.Player, error) {
	args := that.Called(ctx, name, ai)

	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (that *mockPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)

	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (that *mockPlayerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	return that.Called(ctx, player).Error(0)
}

// failingPlayers fails the failOn-th UpdatePlayer call, counting from 1.
type failingPlayers struct {
	*memoryPlayers

	failOn int
	calls  int
}

func (that *failingPlayers) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	that.calls++
	if that.calls == that.failOn {
		return errRedisDown
	}

	return that.memoryPlayers.UpdatePlayer(ctx, player)
}

// brokenGames cannot store games.
type brokenGames struct {
	*memoryStore
}

func (brokenGames) CreateOrUpdate(_ context.Context, _ *entity.Game) error {
	return errRedisDown
}
