package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	maxWaitDuration = 10 * time.Second

	// BoardLength - side of the board used by every suite, 200 per cell on a 3x3 board.
	BoardLength = 600
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
}

// New - a game manager with default settings on a board centred on the origin.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithSettings(t, entity.DefaultSettings())
}

func NewWithSettings(t *testing.T, settings entity.Settings) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	manager, err := usecase.NewGameManager(logger, settings, entity.CenteredBounds(BoardLength))
	if err != nil {
		t.Fatalf("could not create game manager: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Manager: manager,
	}
}
