package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/menu"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type Mode string

const (
	ModeMenu  Mode = "menu"
	ModeMatch Mode = "match"
)

// GameManager - selects which state machine receives input. Exactly one of the
// menu and the match is live; a match exists only in ModeMatch.
type GameManager struct {
	logger *slog.Logger

	mode     Mode
	settings *entity.Settings
	menu     *menu.Machine
	bounds   entity.Bounds

	match *tictactoe.Match
	quit  bool
}

func NewGameManager(logger *slog.Logger, settings entity.Settings, bounds entity.Bounds) (*GameManager, error) {
	current := settings

	machine, err := menu.NewMachine(&current)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	return &GameManager{
		logger: logger.With("component", "game-manager"),

		mode:     ModeMenu,
		settings: &current,
		menu:     machine,
		bounds:   bounds,
	}, nil
}

// Dispatch - delivers a menu action. While a match runs only BackToMainMenu is accepted.
func (that *GameManager) Dispatch(cmd menu.Command) error {
	log := that.logger.With("method", "Dispatch", "action", cmd.Action)

	if that.mode == ModeMatch && cmd.Action != menu.ActionBackToMainMenu {
		log.Debug("action ignored during match")
		return fmt.Errorf("%w: %s", apperror.ErrMatchInProgress, cmd.Action)
	}

	from := that.menu.Screen()

	effect, err := that.menu.Apply(cmd)
	if err != nil {
		log.Debug("action rejected", "screen", from, "error", err)
		return fmt.Errorf("failed to apply menu action: %w", err)
	}

	if err = that.applyEffect(effect); err != nil {
		return err
	}

	log.Info("menu action applied", "from", from, "to", that.menu.Screen(), "effect", effect.String())

	return nil
}

func (that *GameManager) applyEffect(effect menu.Effect) error {
	switch effect {
	case menu.EffectStartMatch:
		return that.startMatch()
	case menu.EffectEndMatch:
		that.endMatch()
	case menu.EffectQuit:
		that.quit = true
	case menu.EffectNone:
	}

	return nil
}

func (that *GameManager) startMatch() error {
	match, err := tictactoe.NewMatch(that.settings.BoardSize)
	if err != nil {
		// the menu already left its screen, bring it back
		if _, backErr := that.menu.Apply(menu.Command{Action: menu.ActionBackToMainMenu}); backErr != nil {
			that.logger.Error("failed to restore menu", "error", backErr)
		}

		return fmt.Errorf("failed to start match: %w", err)
	}

	that.match = match
	that.mode = ModeMatch

	that.logger.Info("match started", "board_size", that.settings.BoardSize)

	return nil
}

func (that *GameManager) endMatch() {
	log := that.logger.With("method", "endMatch")

	if that.match != nil {
		log.Info("match discarded", "outcome", that.match.Outcome(), "moves", len(that.match.Moves()))
	}

	that.match = nil
	that.mode = ModeMenu
}

// Click - maps a pointer position to a cell and plays it.
func (that *GameManager) Click(pointer entity.Point) (entity.Coordinates, error) {
	if that.match == nil {
		return entity.Coordinates{}, apperror.ErrNoActiveMatch
	}

	c, ok := entity.PixelToCoordinates(that.bounds, that.CellSize(), pointer)
	if !ok {
		that.logger.Debug("click outside the board", "x", pointer.X, "y", pointer.Y)
		return entity.Coordinates{}, fmt.Errorf("%w: pointer (%v, %v)", apperror.ErrOutOfBounds, pointer.X, pointer.Y)
	}

	return c, that.MakeTurn(c)
}

// MakeTurn - plays the current player's mark at c.
func (that *GameManager) MakeTurn(c entity.Coordinates) error {
	log := that.logger.With("method", "MakeTurn", "coordinates", c.String())

	if that.match == nil {
		return apperror.ErrNoActiveMatch
	}

	mark := that.match.Turn()

	if err := that.match.AttemptMove(c); err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("tile already taken")
		} else {
			log.Debug("move rejected", "error", err)
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move accepted", "mark", mark, "board", that.match.Board().String())

	if that.match.IsOver() {
		log.Info("match over", "outcome", that.match.Outcome())
	}

	return nil
}

func (that *GameManager) Mode() Mode {
	return that.mode
}

func (that *GameManager) Settings() entity.Settings {
	return *that.settings
}

func (that *GameManager) Bounds() entity.Bounds {
	return that.bounds
}

// CellSize - side of one cell of the live match, or of a board of the selected size.
func (that *GameManager) CellSize() float64 {
	if that.match != nil {
		return that.bounds.CellSize(that.match.Board().Size())
	}

	return that.bounds.CellSize(that.settings.BoardSize)
}

// Match - the live match, nil outside ModeMatch.
func (that *GameManager) Match() *tictactoe.Match {
	return that.match
}

func (that *GameManager) QuitRequested() bool {
	return that.quit
}
