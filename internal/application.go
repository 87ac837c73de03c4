package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

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

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gameManager, err := usecase.NewGameManager(logger, conf.Settings.Entity(), conf.Board.Bounds())
	if err != nil {
		return fmt.Errorf("could not create game manager: %w", err)
	}

	// run console server
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console server", "board_size", conf.Settings.BoardSize, "board_length", conf.Board.Length)
		consoleServer := console.New(logger, gameManager)
		consoleErrCh <- consoleServer.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console server error: %w", err)
		}

		log.Info("Console session closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
