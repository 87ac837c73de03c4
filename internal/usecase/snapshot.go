package usecase

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/menu"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Snapshot - everything a presenter needs to draw the current frame.
type Snapshot struct {
	Mode     Mode            `json:"mode"`
	Title    string          `json:"title"`
	Screen   menu.Screen     `json:"screen"`
	Actions  []ActionView    `json:"actions"`
	Settings entity.Settings `json:"settings"`
	Setting  *SettingView    `json:"setting,omitempty"`
	Match    *MatchView      `json:"match,omitempty"`
}

// ActionView - an offered action with its button caption. Select has no caption,
// its options are listed in the SettingView.
type ActionView struct {
	Action menu.Action `json:"action"`
	Label  string      `json:"label,omitempty"`
}

type SettingView struct {
	Name    string             `json:"name"`
	Options []menu.OptionState `json:"options"`
}

type MatchView struct {
	State       tictactoe.State      `json:"state"`
	Board       [][]entity.Cell      `json:"board"`
	Turn        entity.Cell          `json:"turn"`
	Outcome     tictactoe.Outcome    `json:"outcome"`
	WinningLine []entity.Coordinates `json:"winning_line,omitempty"`
	Bounds      entity.Bounds        `json:"bounds"`
	CellSize    float64              `json:"cell_size"`
}

func (that *GameManager) Snapshot() Snapshot {
	snapshot := Snapshot{
		Mode:     that.mode,
		Title:    menu.TitleLabel,
		Screen:   that.menu.Screen(),
		Settings: *that.settings,
	}

	for _, action := range that.menu.Actions() {
		snapshot.Actions = append(snapshot.Actions, ActionView{Action: action, Label: action.Label()})
	}

	if setting, ok := that.menu.Setting(that.menu.Screen()); ok {
		snapshot.Setting = &SettingView{
			Name:    setting.Name(),
			Options: setting.OptionStates(),
		}
	}

	if that.match != nil {
		snapshot.Match = &MatchView{
			State:       that.match.State(),
			Board:       that.match.Board().Rows(),
			Turn:        that.match.Turn(),
			Outcome:     that.match.Outcome(),
			WinningLine: that.match.WinningLine(),
			Bounds:      that.bounds,
			CellSize:    that.CellSize(),
		}
	}

	return snapshot
}
