package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/config"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/lesson"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/render/html"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/trace"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-tutorial/transport/rest"
)

var ErrAddrNotFound = errors.New("redis host is empty")

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

	tracer, err := trace.New(ctx, conf.Tracing.Endpoint, conf.Tracing.ServiceName)
	if err != nil {
		return fmt.Errorf("could not set up tracing: %w", err)
	}

	defer func() {
		if err = tracer.Shutdown(context.Background()); err != nil {
			log.Error("could not flush traces", "error", err)
		}
	}()

	catalog, err := lesson.Load()
	if err != nil {
		return fmt.Errorf("could not load lessons: %w", err)
	}

	observers := tictactoe.Observers{tictactoe.NewLogObserver(logger)}

	var onRelease func(mountID string)

	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		activationRepo := repository.NewActivationRepository(redisStorage, conf.Mounts.TTL)
		journal := usecase.NewJournal(logger, activationRepo)
		observers = append(observers, journal)
		onRelease = journal.MountReleased
		log.Info("Recording activations in redis", "addr", conf.Redis.GetRedisAddr())
	}

	host := html.NewHost(logger, html.Options{
		Capacity:  conf.Mounts.Capacity,
		TTL:       conf.Mounts.TTL,
		BasePath:  tictactoe.PagePath,
		OnRelease: onRelease,
	})

	tutorial := usecase.NewTutorialUseCase(conf.CourseTitle, host, catalog, observers)
	router := rest.NewRouter(logger, rest.NewHandlers(logger, tutorial, host, tracer))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "tracing", tracer.Enabled())
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
