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

	"github.com/rocketscienceinc/mindgames-backend/internal/config"
	"github.com/rocketscienceinc/mindgames-backend/internal/repository"
	"github.com/rocketscienceinc/mindgames-backend/internal/repository/storage"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/telemetry"
	"github.com/rocketscienceinc/mindgames-backend/internal/usecase"
	"github.com/rocketscienceinc/mindgames-backend/transport/rest"
	"github.com/rocketscienceinc/mindgames-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const telemetryShutdownTimeout = 5 * time.Second

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

	shutdownTelemetry, err := telemetry.Init(ctx, conf.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer shutdownCancel()

		if err = shutdownTelemetry(shutdownCtx); err != nil {
			log.Error("could not flush telemetry", "error", err)
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewTicTacToeRepository(redisStorage, conf.SessionTTL)
	matchRepo := repository.NewMatchRepository(redisStorage, conf.SessionTTL)

	ticTacToeUseCase := usecase.NewTicTacToeUseCase(logger, gameRepo)
	rpsUseCase := usecase.NewRPSUseCase(logger, matchRepo, rps.NewFrequencyPredictor(nil))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, ticTacToeUseCase, rpsUseCase)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, ticTacToeUseCase, rpsUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
