package console

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/menu"
)

func (that *Server) handleState(_ context.Context, msg *Message) error {
	that.syncTiles()
	return that.sendState(msg.Action)
}

// menuHandler - forwards a payload-free menu action. A rejected action leaves the state as it was.
func (that *Server) menuHandler(action menu.Action) func(ctx context.Context, msg *Message) error {
	return func(_ context.Context, msg *Message) error {
		return that.dispatch(msg.Action, menu.Command{Action: action})
	}
}

func (that *Server) handleSelect(_ context.Context, msg *Message) error {
	var payload SelectPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	return that.dispatch(msg.Action, menu.Command{Action: menu.ActionSelect, Value: payload.Value})
}

func (that *Server) dispatch(action string, cmd menu.Command) error {
	if err := that.game.Dispatch(cmd); err != nil {
		that.logger.Debug("menu action rejected", "action", action, "error", err)
	}

	that.syncTiles()

	return that.sendState(action)
}

func (that *Server) handleClick(_ context.Context, msg *Message) error {
	var payload ClickPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	c, err := that.game.Click(entity.Point{X: payload.X, Y: payload.Y})
	if err != nil {
		that.logger.Debug("click rejected", "x", payload.X, "y", payload.Y, "error", err)
		return that.sendState(msg.Action)
	}

	return that.sendTurn(msg.Action, c)
}

func (that *Server) handleTurn(_ context.Context, msg *Message) error {
	var payload TurnPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	c := entity.Coordinates{Row: payload.Row, Col: payload.Col}

	if err := that.game.MakeTurn(c); err != nil {
		that.logger.Debug("turn rejected", "coordinates", c.String(), "error", err)
		return that.sendState(msg.Action)
	}

	return that.sendTurn(msg.Action, c)
}

func (that *Server) sendTurn(action string, c entity.Coordinates) error {
	that.syncTiles()

	tile, _ := that.tiles.Lookup(c)
	snapshot := that.game.Snapshot()
	payload := Payload{State: &snapshot, Tile: tile}

	// where the presenter draws the new mark
	if view := snapshot.Match; view != nil {
		centre := entity.CoordinatesToPixel(view.Bounds, view.CellSize, c)
		payload.Centre = &centre
	}

	return that.sendMessage(action, payload)
}

func (that *Server) handleDump(_ context.Context, msg *Message) error {
	match := that.game.Match()
	if match == nil {
		that.logger.Debug("nothing to dump, no match is running")
		return that.sendState(msg.Action)
	}

	snapshot := that.game.Snapshot()
	board := match.Board().String()

	if err := that.sendMessage(msg.Action, Payload{State: &snapshot, BoardText: board}); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	return nil
}
