package menu

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Machine - menu navigation. It owns the current screen and changes settings
// only through the setting bound to the active settings screen.
type Machine struct {
	screen   Screen
	settings map[Screen]DiscreteSetting
}

// NewMachine - starts on the main screen with choices bound to the given settings.
func NewMachine(settings *entity.Settings) (*Machine, error) {
	boardSize, err := NewChoice(BoardSizeLabel, entity.OfferedOptions(), &settings.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to bind board size: %w", err)
	}

	searchDepth, err := NewChoice(SearchDepthLabel, entity.OfferedOptions(), &settings.SearchDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to bind search depth: %w", err)
	}

	return &Machine{
		screen: ScreenMain,
		settings: map[Screen]DiscreteSetting{
			ScreenSettingsBoardSize:   boardSize,
			ScreenSettingsSearchDepth: searchDepth,
		},
	}, nil
}

func (that *Machine) Screen() Screen {
	return that.screen
}

// Setting - the setting edited on the given screen, if any.
func (that *Machine) Setting(screen Screen) (DiscreteSetting, bool) {
	setting, ok := that.settings[screen]
	return setting, ok
}

// Actions - the actions offered on the current screen, in display order.
func (that *Machine) Actions() []Action {
	switch that.screen {
	case ScreenMain:
		return []Action{ActionPlayAI, ActionPlayPlayers, ActionOpenSettings, ActionQuit}
	case ScreenSettings:
		return []Action{ActionOpenSearchDepth, ActionOpenBoardSize, ActionBack}
	case ScreenSettingsBoardSize, ScreenSettingsSearchDepth:
		return []Action{ActionSelect, ActionBack}
	case ScreenDisabled:
		return []Action{ActionBackToMainMenu}
	default:
		return nil
	}
}

// Apply - runs one transition. On error the screen and settings are unchanged.
func (that *Machine) Apply(cmd Command) (Effect, error) {
	switch that.screen {
	case ScreenMain:
		return that.applyMain(cmd)
	case ScreenSettings:
		return that.applySettings(cmd)
	case ScreenSettingsBoardSize, ScreenSettingsSearchDepth:
		return that.applySettingScreen(cmd)
	case ScreenDisabled:
		if cmd.Action == ActionBackToMainMenu {
			that.screen = ScreenMain
			return EffectEndMatch, nil
		}
	}

	return EffectNone, that.unavailable(cmd)
}

func (that *Machine) applyMain(cmd Command) (Effect, error) {
	switch cmd.Action {
	case ActionPlayAI, ActionPlayPlayers:
		that.screen = ScreenDisabled
		return EffectStartMatch, nil
	case ActionOpenSettings:
		that.screen = ScreenSettings
		return EffectNone, nil
	case ActionQuit:
		return EffectQuit, nil
	default:
		return EffectNone, that.unavailable(cmd)
	}
}

func (that *Machine) applySettings(cmd Command) (Effect, error) {
	switch cmd.Action {
	case ActionOpenBoardSize:
		that.screen = ScreenSettingsBoardSize
	case ActionOpenSearchDepth:
		that.screen = ScreenSettingsSearchDepth
	case ActionBack:
		that.screen = ScreenMain
	default:
		return EffectNone, that.unavailable(cmd)
	}

	return EffectNone, nil
}

func (that *Machine) applySettingScreen(cmd Command) (Effect, error) {
	switch cmd.Action {
	case ActionSelect:
		if err := that.settings[that.screen].Select(cmd.Value); err != nil {
			return EffectNone, fmt.Errorf("failed to select option: %w", err)
		}
	case ActionBack:
		that.screen = ScreenSettings
	default:
		return EffectNone, that.unavailable(cmd)
	}

	return EffectNone, nil
}

func (that *Machine) unavailable(cmd Command) error {
	return fmt.Errorf("%w: %s on %s", apperror.ErrActionUnavailable, cmd.Action, that.screen)
}
