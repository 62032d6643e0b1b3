package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

const (
	uiScreen = "screen"
	uiLine   = "line"
)

var ErrUnknownUI = errors.New("unknown console ui")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	mode, err := tictactoe.ParseMode(conf.Game.Mode)
	if err != nil {
		return fmt.Errorf("invalid game mode: %w", err)
	}

	level, err := engine.ParseLevel(conf.Game.Level)
	if err != nil {
		return fmt.Errorf("invalid game level: %w", err)
	}

	aiSide, err := entity.ParseCell(conf.Game.AISide)
	if err != nil {
		return fmt.Errorf("invalid AI side: %w", err)
	}

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	searcher := engine.New(logger, aiSide, level)
	gameController := tictactoe.NewGameController(logger, searcher, mode)

	gameSession := usecase.NewGameSession(logger, gameController, sessionRepo, conf.SessionID)

	resumed, err := gameSession.Start(ctx)
	if err != nil {
		return fmt.Errorf("could not start game session: %w", err)
	}

	log.Info("Starting console game", "sessionID", gameSession.ID(), "resumed", resumed,
		"mode", mode.String(), "level", level.String(), "aiSide", aiSide.String())

	if err = runConsole(ctx, logger, conf.Console, gameSession); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func runConsole(ctx context.Context, logger *slog.Logger, conf config.Console, gameSession *usecase.GameSession) error {
	switch conf.UI {
	case uiScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("could not open screen: %w", err)
		}

		if err = screen.Init(); err != nil {
			return fmt.Errorf("could not init screen: %w", err)
		}
		defer screen.Fini()

		return console.NewScreen(logger, gameSession, screen).Run(ctx)
	case uiLine:
		renderer := console.NewRenderer(os.Stdout, !conf.KeepScreen)
		return console.New(logger, gameSession, os.Stdin, renderer).Run(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUI, conf.UI)
	}
}

func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, sessions are kept in memory")
		return repository.NewMemorySessionRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.Redis.SessionTTL), closeRepo, nil
}
