package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/service"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closer, err := openStore(ctx, log, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	roomService := service.NewRoomService(logger, store, conf.StoreTimeout)
	gameService := service.NewGameService(logger, store, conf.StoreTimeout)

	router := rest.NewRouter(logger, store, roomService, gameService)
	server := rest.NewServer(logger, conf.HTTPPort, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if httpErr := server.Start(); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("application stopped: %w", err)
	}

	return nil
}

// openStore connects the Room Store backend chosen in the config.
func openStore(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RoomRepository, io.Closer, error) {
	switch conf.Storage {
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("Using redis storage", "addr", redisAddrString)

		return repository.NewRedisRoomRepository(redisStorage.Connection, conf.Redis.RoomTTL), redisStorage, nil

	case config.StoragePostgres:
		postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN(), conf.Postgres.MaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = postgresStorage.Init(ctx); err != nil {
			_ = postgresStorage.Close()
			return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		log.Info("Using postgres storage", "host", conf.Postgres.Host, "db", conf.Postgres.DBName)

		return repository.NewPostgresRoomRepository(postgresStorage.Connection), postgresStorage, nil

	default:
		log.Info("Using in-memory storage")

		return repository.NewMemoryRoomRepository(), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
