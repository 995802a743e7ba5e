package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the game loop on the given input and output until the player leaves.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open score storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	var opts []console.Option
	if conf.NoColor {
		opts = append(opts, console.WithNoColor())
	}

	ui := console.New(in, out, opts...)
	ledger := service.NewScoreService(logger, scoreRepo)
	human := service.NewHumanService(ui)
	bot := service.NewBotService(logger, nil)
	gameManager := usecase.NewGameManager(logger, ui, ledger, human, bot, conf.MaxBoardSize)

	if runErr := gameManager.Run(ctx); runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game loop failed: %w", runErr)
	}

	return nil
}

// newScoreRepository - opens the storage selected by the config and returns its closer.
func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Scores.Driver {
	case config.DriverFile:
		return repository.NewFileScoreRepository(conf.Scores.FilePath), noop, nil

	case config.DriverRedis:
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Scores.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			sqliteStorage.Close()
			return nil, noop, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteScoreRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownDriver, conf.Scores.Driver)
	}
}
