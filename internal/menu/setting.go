package menu

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// DiscreteSetting - a setting picked from a fixed list of values.
// Exactly one offered value is selected at any time.
type DiscreteSetting interface {
	Name() string
	Options() []uint32
	Selected() uint32
	Select(value uint32) error
	OptionStates() []OptionState
}

// OptionState - one offered value and whether it is the selected one.
type OptionState struct {
	Value    uint32 `json:"value"`
	Selected bool   `json:"selected"`
}

type choice struct {
	name     string
	options  []uint32
	selected *uint32
}

// NewChoice - binds an option list to the value it controls.
func NewChoice(name string, options []uint32, selected *uint32) (DiscreteSetting, error) {
	if !slices.Contains(options, *selected) {
		return nil, fmt.Errorf("%w: %s %d not in %v", apperror.ErrOptionNotOffered, name, *selected, options)
	}

	return &choice{
		name:     name,
		options:  slices.Clone(options),
		selected: selected,
	}, nil
}

func (that *choice) Name() string {
	return that.name
}

func (that *choice) Options() []uint32 {
	return slices.Clone(that.options)
}

func (that *choice) Selected() uint32 {
	return *that.selected
}

// Select - replaces the selected value. On error the previous value is kept.
func (that *choice) Select(value uint32) error {
	if value == 0 {
		return fmt.Errorf("%w: %s %d", apperror.ErrInvalidSize, that.name, value)
	}

	if !slices.Contains(that.options, value) {
		return fmt.Errorf("%w: %s %d", apperror.ErrOptionNotOffered, that.name, value)
	}

	*that.selected = value

	return nil
}

func (that *choice) OptionStates() []OptionState {
	states := make([]OptionState, len(that.options))
	for i, value := range that.options {
		states[i] = OptionState{Value: value, Selected: value == *that.selected}
	}

	return states
}
