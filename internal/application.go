package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/render"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

const cleanupTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage)
	solutionRepo := repository.NewSolutionRepository(redisStorage, conf.Redis.SolutionTTL)

	playerService := service.NewPlayerService(playerRepo)
	botService := service.NewBotService(logger, solutionRepo, conf.Search)
	gameManager := usecase.NewGameManager(logger, playerService, gameRepo, botService)

	renderer := render.New(os.Stdout, conf.Render.NoColor)

	return runMatch(ctx, log, gameManager, renderer, conf.Match)
}

// runMatch - plays one game between the configured seats. Engine seats move on their own,
// the match stops at the first human turn and leaves the game stored for MakeTurn.
func runMatch(
	ctx context.Context,
	log *slog.Logger,
	games usecase.GameUseCase,
	renderer *render.Renderer,
	match config.Match,
) error {
	first, err := games.RegisterPlayer(ctx, match.First.Name, !match.First.Human)
	if err != nil {
		return err
	}

	second, err := games.RegisterPlayer(ctx, match.Second.Name, !match.Second.Human)
	if err != nil {
		return err
	}

	started, err := games.StartGame(ctx, first.ID, second.ID)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	game, err := games.PlayOut(ctx, started.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
			defer cancel()

			if cleanupErr := games.CleanupGame(cleanupCtx, started.ID); cleanupErr != nil {
				log.Error("could not clean up interrupted game", "game", started.ID, "error", cleanupErr)
			}

			log.Info("Match interrupted", "game", started.ID)

			return nil
		}

		return fmt.Errorf("could not play out game: %w", err)
	}

	if game.IsOngoing() {
		log.Info("Waiting for a human move", "game", game.ID, "turn", game.Turn.String())
	}

	return renderer.Game(game)
}
