package usecase_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/menu"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatch(t *testing.T, manager *usecase.GameManager, actions ...menu.Action) {
	t.Helper()

	for _, action := range actions {
		require.NoError(t, manager.Dispatch(menu.Command{Action: action}), "action %s", action)
	}
}

// cellCentre - centre of a cell on the suite's 3x3 board with 200 per cell.
func cellCentre(row, col float64) entity.Point {
	return entity.Point{X: -200 + 200*col, Y: 200 - 200*row}
}

func TestGameManager_Initial(t *testing.T) {
	_, st := suite.New(t)

	// Then: the menu is live, on the main screen, with no match
	assert.Equal(t, usecase.ModeMenu, st.Manager.Mode())
	assert.Nil(t, st.Manager.Match())
	assert.False(t, st.Manager.QuitRequested())
	assert.Equal(t, entity.DefaultSettings(), st.Manager.Settings())

	snapshot := st.Manager.Snapshot()
	assert.Equal(t, menu.ScreenMain, snapshot.Screen)
	assert.Nil(t, snapshot.Match)
	assert.Nil(t, snapshot.Setting)
}

func TestGameManager_SnapshotLabels(t *testing.T) {
	t.Run("Main screen actions carry their captions", func(t *testing.T) {
		_, st := suite.New(t)

		snapshot := st.Manager.Snapshot()

		assert.Equal(t, menu.TitleLabel, snapshot.Title)
		assert.Equal(t, []usecase.ActionView{
			{Action: menu.ActionPlayAI, Label: "Play vs AI"},
			{Action: menu.ActionPlayPlayers, Label: "Play 1vs1"},
			{Action: menu.ActionOpenSettings, Label: "Settings"},
			{Action: menu.ActionQuit, Label: "Quit"},
		}, snapshot.Actions)
	})

	t.Run("Setting screens offer select without a caption", func(t *testing.T) {
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionOpenSettings, menu.ActionOpenBoardSize)

		snapshot := st.Manager.Snapshot()

		assert.Equal(t, []usecase.ActionView{
			{Action: menu.ActionSelect},
			{Action: menu.ActionBack, Label: "Back"},
		}, snapshot.Actions)
		assert.Equal(t, menu.BoardSizeLabel, snapshot.Setting.Name)
	})
}

func TestGameManager_StartMatch(t *testing.T) {
	t.Run("Selected board size is used by the next match", func(t *testing.T) {
		// Given: the board size screen with 5 selected
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionOpenSettings, menu.ActionOpenBoardSize)
		require.NoError(t, st.Manager.Dispatch(menu.Command{Action: menu.ActionSelect, Value: 5}))
		dispatch(t, st.Manager, menu.ActionBack, menu.ActionBack)

		// When: a match starts
		dispatch(t, st.Manager, menu.ActionPlayPlayers)

		// Then: the board is 5x5
		require.Equal(t, usecase.ModeMatch, st.Manager.Mode())
		require.NotNil(t, st.Manager.Match())
		assert.Equal(t, uint32(5), st.Manager.Match().Board().Size())
		assert.InDelta(t, 120.0, st.Manager.CellSize(), 1e-9)

		snapshot := st.Manager.Snapshot()
		require.NotNil(t, snapshot.Match)
		assert.Len(t, snapshot.Match.Board, 5)
		assert.Equal(t, tictactoe.StatePlaying, snapshot.Match.State)
		assert.Equal(t, entity.CellX, snapshot.Match.Turn)
		assert.Equal(t, menu.ScreenDisabled, snapshot.Screen)
	})

	t.Run("Both play routes start the same kind of match", func(t *testing.T) {
		for _, action := range []menu.Action{menu.ActionPlayAI, menu.ActionPlayPlayers} {
			_, st := suite.New(t)

			dispatch(t, st.Manager, action)

			require.Equal(t, usecase.ModeMatch, st.Manager.Mode(), "action %s", action)
			assert.Equal(t, uint32(3), st.Manager.Match().Board().Size())
		}
	})

	t.Run("Settings screen shows the options of the active setting", func(t *testing.T) {
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionOpenSettings, menu.ActionOpenSearchDepth)

		snapshot := st.Manager.Snapshot()

		require.NotNil(t, snapshot.Setting)
		assert.Equal(t, menu.SearchDepthLabel, snapshot.Setting.Name)
		require.Len(t, snapshot.Setting.Options, 6)
		for _, option := range snapshot.Setting.Options {
			assert.Equal(t, option.Value == entity.DefaultSearchDepth, option.Selected, "option %d", option.Value)
		}
	})
}

func TestGameManager_Click(t *testing.T) {
	t.Run("Clicks play the cell under the pointer", func(t *testing.T) {
		// Given: a running 3x3 match
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayAI)

		// When: X clicks the top-left cell
		c, err := st.Manager.Click(cellCentre(0, 0))

		// Then: X is on (0, 0) and O is to move
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinates{Row: 0, Col: 0}, c)
		cell, err := st.Manager.Match().Board().At(c)
		require.NoError(t, err)
		assert.Equal(t, entity.CellX, cell)
		assert.Equal(t, entity.CellO, st.Manager.Match().Turn())
	})

	t.Run("Clicking an occupied cell changes nothing", func(t *testing.T) {
		// Given: X on the centre
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayAI)
		_, err := st.Manager.Click(cellCentre(1, 1))
		require.NoError(t, err)
		before := st.Manager.Snapshot()

		// When: O clicks the centre
		_, err = st.Manager.Click(cellCentre(1, 1))

		// Then: ErrCellOccupied and the same snapshot
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, st.Manager.Snapshot())
	})

	t.Run("Clicks outside the board are ignored", func(t *testing.T) {
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayAI)
		before := st.Manager.Snapshot()

		_, err := st.Manager.Click(entity.Point{X: 400, Y: 0})

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, before, st.Manager.Snapshot())
	})

	t.Run("Clicks in the menu are ignored", func(t *testing.T) {
		_, st := suite.New(t)

		_, err := st.Manager.Click(cellCentre(0, 0))

		require.ErrorIs(t, err, apperror.ErrNoActiveMatch)
		assert.Equal(t, usecase.ModeMenu, st.Manager.Mode())
	})

	t.Run("Top row win ends the match", func(t *testing.T) {
		// Given: a running 3x3 match
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayPlayers)

		// When: X completes the top row
		for _, p := range []entity.Point{cellCentre(0, 0), cellCentre(1, 1), cellCentre(0, 1), cellCentre(1, 0), cellCentre(0, 2)} {
			_, err := st.Manager.Click(p)
			require.NoError(t, err)
		}

		// Then: X won and the next click fails with ErrMatchFinished
		snapshot := st.Manager.Snapshot()
		require.NotNil(t, snapshot.Match)
		assert.Equal(t, tictactoe.OutcomeWinX, snapshot.Match.Outcome)
		assert.Equal(t, tictactoe.StateGameOver, snapshot.Match.State)

		_, err := st.Manager.Click(cellCentre(2, 2))
		require.ErrorIs(t, err, apperror.ErrMatchFinished)
		assert.Equal(t, snapshot, st.Manager.Snapshot())
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	_, st := suite.New(t)

	require.ErrorIs(t, st.Manager.MakeTurn(entity.Coordinates{}), apperror.ErrNoActiveMatch)

	dispatch(t, st.Manager, menu.ActionPlayAI)
	require.NoError(t, st.Manager.MakeTurn(entity.Coordinates{Row: 2, Col: 2}))
	require.ErrorIs(t, st.Manager.MakeTurn(entity.Coordinates{Row: 3, Col: 0}), apperror.ErrOutOfBounds)
	assert.Equal(t, entity.CellO, st.Manager.Match().Turn())
}

func TestGameManager_BackToMainMenu(t *testing.T) {
	t.Run("Leaving a match discards it", func(t *testing.T) {
		// Given: a match with one move
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayAI)
		_, err := st.Manager.Click(cellCentre(0, 0))
		require.NoError(t, err)

		// When: the player goes back to the main menu
		dispatch(t, st.Manager, menu.ActionBackToMainMenu)

		// Then: the menu is live again and the match is gone
		assert.Equal(t, usecase.ModeMenu, st.Manager.Mode())
		assert.Nil(t, st.Manager.Match())
		assert.Equal(t, menu.ScreenMain, st.Manager.Snapshot().Screen)

		// When: a new match starts
		dispatch(t, st.Manager, menu.ActionPlayAI)

		// Then: it begins empty with X to move
		assert.Equal(t, entity.CellX, st.Manager.Match().Turn())
		assert.Empty(t, st.Manager.Match().Moves())
	})

	t.Run("Menu actions are ignored during a match", func(t *testing.T) {
		_, st := suite.New(t)
		dispatch(t, st.Manager, menu.ActionPlayAI)

		for _, action := range []menu.Action{menu.ActionOpenSettings, menu.ActionQuit, menu.ActionPlayPlayers, menu.ActionSelect} {
			err := st.Manager.Dispatch(menu.Command{Action: action, Value: 5})
			require.ErrorIs(t, err, apperror.ErrMatchInProgress, "action %s", action)
		}

		assert.Equal(t, usecase.ModeMatch, st.Manager.Mode())
		assert.False(t, st.Manager.QuitRequested())
		assert.Equal(t, entity.DefaultSettings(), st.Manager.Settings())
	})

	t.Run("Back to main menu is rejected outside a match", func(t *testing.T) {
		_, st := suite.New(t)

		err := st.Manager.Dispatch(menu.Command{Action: menu.ActionBackToMainMenu})

		require.ErrorIs(t, err, apperror.ErrActionUnavailable)
		assert.Equal(t, usecase.ModeMenu, st.Manager.Mode())
	})
}

func TestGameManager_Quit(t *testing.T) {
	_, st := suite.New(t)

	dispatch(t, st.Manager, menu.ActionQuit)

	assert.True(t, st.Manager.QuitRequested())
}

func TestNewGameManager(t *testing.T) {
	t.Run("Settings outside the offered range are rejected", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		_, err := usecase.NewGameManager(logger, entity.Settings{BoardSize: 12, SearchDepth: 4}, entity.CenteredBounds(600))

		require.ErrorIs(t, err, apperror.ErrOptionNotOffered)
	})

	t.Run("Settings passed in are copied", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		settings := entity.DefaultSettings()
		manager, err := usecase.NewGameManager(logger, settings, entity.CenteredBounds(600))
		require.NoError(t, err)

		dispatch(t, manager, menu.ActionOpenSettings, menu.ActionOpenBoardSize)
		require.NoError(t, manager.Dispatch(menu.Command{Action: menu.ActionSelect, Value: 7}))

		assert.Equal(t, uint32(7), manager.Settings().BoardSize)
		assert.Equal(t, entity.DefaultBoardSize, settings.BoardSize)
	})
}
