package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var (
	ErrSamePlayer     = errors.New("a player cannot play against themselves")
	ErrPlayerInGame   = errors.New("player is already in a game")
	ErrBotInvalidMove = errors.New("bot chose a move for the wrong side")
)

type GameManager struct {
	logger *slog.Logger

	playerService playerService
	gameRepo      gameRepo
	bot           botService
}

func NewGameManager(logger *slog.Logger, playerService playerService, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger,

		playerService: playerService,
		gameRepo:      gameRepo,
		bot:           bot,
	}
}

func (that *GameManager) RegisterPlayer(ctx context.Context, name string, ai bool) (*entity.Player, error) {
	player, err := that.playerService.CreatePlayer(ctx, name, ai)
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	that.logger.With("method", "RegisterPlayer").Info("player registered", "player", player.ID, "name", player.Name, "ai", player.AI)

	return player, nil
}

// StartGame - seats firstID as First and secondID as Second.
func (that *GameManager) StartGame(ctx context.Context, firstID, secondID string) (*entity.Game, error) {
	if firstID == secondID {
		return nil, fmt.Errorf("%w: %s", ErrSamePlayer, firstID)
	}

	players := make([]*entity.Player, 0, 2)
	for _, id := range []string{firstID, secondID} {
		player, err := that.playerService.GetPlayerByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed get player by id: %w", err)
		}

		if player.InGame() {
			return nil, fmt.Errorf("%w: player %s in game %s", ErrPlayerInGame, player.ID, player.GameID)
		}

		players = append(players, player)
	}

	gameID, err := that.gameRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate game id: %w", err)
	}

	game := entity.NewGame(gameID)
	for _, player := range players {
		if err = game.AddPlayer(player); err != nil {
			return nil, fmt.Errorf("failed to seat player: %w", err)
		}
	}

	// The game is stored before any player points at it.
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	for i, player := range players {
		if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
			that.abortStart(ctx, game, players[:i])
			return nil, fmt.Errorf("failed update player: %w", err)
		}
	}

	that.logger.With("method", "StartGame").Info("game started", "game", game.ID, "first", firstID, "second", secondID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	return that.getGameByID(ctx, gameID)
}

func (that *GameManager) MakeTurn(ctx context.Context, gameID, playerID string, pos tictactoe.Position) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: player %s, game %s", apperror.ErrNotInGame, playerID, gameID)
	}

	if err = that.applyTurn(ctx, game, player, pos); err != nil {
		return game, err
	}

	return game, nil
}

// PlayBotTurn - lets the engine move for the side to move, which must be an AI player.
func (that *GameManager) PlayBotTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = that.playBotTurn(ctx, game); err != nil {
		return game, err
	}

	return game, nil
}

// PlayOut - keeps making engine moves until the game ends or a human is to move.
func (that *GameManager) PlayOut(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for game.IsOngoing() {
		player := game.PlayerToMove()
		if player == nil || !player.IsBot() {
			break
		}

		if err = that.playBotTurn(ctx, game); err != nil {
			return game, err
		}
	}

	return game, nil
}

// CleanupGame - deletes the game and frees players still seated in it.
func (that *GameManager) CleanupGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "CleanupGame", "game", gameID)

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return err
	}

	for _, seated := range game.Players {
		player, err := that.playerService.GetPlayerByID(ctx, seated.ID)
		if err != nil {
			log.Error("failed to get player", "player", seated.ID, "error", err)
			continue
		}

		if player.GameID != gameID {
			continue
		}

		player.GameID = ""
		if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}

	if err = that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

// abortStart - unseats the players already saved and drops the game. If a player cannot be
// unseated the game is kept, so CleanupGame can still free them later.
func (that *GameManager) abortStart(ctx context.Context, game *entity.Game, saved []*entity.Player) {
	log := that.logger.With("method", "abortStart", "game", game.ID)

	freed := true
	for _, player := range saved {
		player.GameID = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to unseat player", "player", player.ID, "error", err)
			freed = false
		}
	}

	if !freed {
		return
	}

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete unstarted game", "error", err)
	}
}

func (that *GameManager) playBotTurn(ctx context.Context, game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	player := game.PlayerToMove()
	if player == nil || !player.IsBot() {
		return fmt.Errorf("%w: game %s, turn %s", apperror.ErrNoBotToMove, game.ID, game.Turn)
	}

	move, err := that.bot.ChooseMove(ctx, game.Board, game.Turn)
	if err != nil {
		return fmt.Errorf("failed to choose bot move: %w", err)
	}

	if move.Mark != player.Mark {
		return fmt.Errorf("%w: %s", ErrBotInvalidMove, move)
	}

	return that.applyTurn(ctx, game, player, move.Position)
}

func (that *GameManager) applyTurn(ctx context.Context, game *entity.Game, player *entity.Player, pos tictactoe.Position) error {
	log := that.logger.With("method", "applyTurn", "game", game.ID, "player", player.ID)

	if err := game.MakeTurn(player.Mark, pos); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Info("turn made", "move", tictactoe.Move{Position: pos, Mark: player.Mark}.String(), "board", game.Board.Key())

	if err := that.updateGame(ctx, game); err != nil {
		return err
	}

	if game.IsFinished() {
		that.recordResults(ctx, game)
		log.Info("game finished", "outcome", game.Outcome().String())
	}

	return nil
}

// recordResults - failures are logged, the finished game itself is already stored.
func (that *GameManager) recordResults(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "recordResults", "game", game.ID)

	outcome := game.Outcome()
	for _, seated := range game.Players {
		player, err := that.playerService.GetPlayerByID(ctx, seated.ID)
		if err != nil {
			log.Error("failed to get player", "player", seated.ID, "error", err)
			continue
		}

		player.Mark = seated.Mark
		player.RecordResult(outcome)

		if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
