package console

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// Message - one line of the protocol: an action name and its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	State     *usecase.Snapshot `json:"state,omitempty"`
	BoardText string            `json:"board_text,omitempty"`
	Tile      string            `json:"tile,omitempty"`
	Centre    *entity.Point     `json:"centre,omitempty"`
}

type SelectPayload struct {
	Value uint32 `json:"value"`
}

type ClickPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TurnPayload struct {
	Row uint32 `json:"row"`
	Col uint32 `json:"col"`
}

func (that *Server) sendMessage(action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if _, err = that.writer.Write(append(responseBytes, '\n')); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err = that.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

func (that *Server) sendState(action string) error {
	snapshot := that.game.Snapshot()
	return that.sendMessage(action, Payload{State: &snapshot})
}

func decodePayload(msg *Message, target any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: %s", ErrMissingPayload, msg.Action)
	}

	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
