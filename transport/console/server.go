package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/menu"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrMissingPayload = errors.New("payload is required")
	ErrLineTooLong    = errors.New("input line too long")
)

type gameManager interface {
	Dispatch(cmd menu.Command) error
	Click(pointer entity.Point) (entity.Coordinates, error)
	MakeTurn(c entity.Coordinates) error
	Snapshot() usecase.Snapshot
	Match() *tictactoe.Match
	QuitRequested() bool
}

// Server - reads one JSON message per line and answers each with the new state.
type Server struct {
	logger *slog.Logger
	game   gameManager

	writer *bufio.Writer
	tiles  *entity.TileIndex[string]
	size   uint32

	handlers map[string]func(ctx context.Context, msg *Message) error
}

func New(logger *slog.Logger, game gameManager) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		game:   game,

		tiles:    entity.NewTileIndex[string](0),
		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers["connect"] = server.handleState
	server.handlers["state"] = server.handleState

	server.handlers["menu:play-ai"] = server.menuHandler(menu.ActionPlayAI)
	server.handlers["menu:play-players"] = server.menuHandler(menu.ActionPlayPlayers)
	server.handlers["menu:settings"] = server.menuHandler(menu.ActionOpenSettings)
	server.handlers["menu:settings:board-size"] = server.menuHandler(menu.ActionOpenBoardSize)
	server.handlers["menu:settings:search-depth"] = server.menuHandler(menu.ActionOpenSearchDepth)
	server.handlers["menu:back"] = server.menuHandler(menu.ActionBack)
	server.handlers["menu:quit"] = server.menuHandler(menu.ActionQuit)
	server.handlers["menu:select"] = server.handleSelect
	server.handlers["game:back"] = server.menuHandler(menu.ActionBackToMainMenu)

	server.handlers["board:click"] = server.handleClick
	server.handlers["board:turn"] = server.handleTurn
	server.handlers["board:dump"] = server.handleDump

	return server
}

// maxLineSize - longer input lines are drained and skipped.
const maxLineSize = 1 << 20

// Start - serves messages until quit is requested, the input ends or ctx is done.
func (that *Server) Start(ctx context.Context, input io.Reader, output io.Writer) error {
	log := that.logger.With("method", "Start")

	that.writer = bufio.NewWriter(output)
	reader := bufio.NewReader(input)

	for {
		line, err := readLine(reader)
		switch {
		case errors.Is(err, io.EOF):
			log.Info("input closed")
			return nil
		case errors.Is(err, ErrLineTooLong):
			log.Error("message skipped", "error", err)
			continue
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err = ctx.Err(); err != nil {
			return fmt.Errorf("console stopped: %w", err)
		}

		if len(line) == 0 {
			continue
		}

		var message Message
		if err = json.Unmarshal(line, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		if err = that.processMessage(ctx, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			continue
		}

		if that.game.QuitRequested() {
			log.Info("quit requested")
			return nil
		}
	}
}

// readLine - the next line without its terminator, or ErrLineTooLong once an
// oversized line has been read past.
func readLine(reader *bufio.Reader) ([]byte, error) {
	var line []byte
	tooLong := false

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return nil, err
		}

		if !tooLong && len(line)+len(chunk) > maxLineSize {
			tooLong = true
			line = nil
		}
		if !tooLong {
			line = append(line, chunk...)
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return nil, fmt.Errorf("%w: over %d bytes", ErrLineTooLong, maxLineSize)
	}

	return line, nil
}

// processMessage - runs the handler registered for the message action.
func (that *Server) processMessage(ctx context.Context, msg *Message) error {
	handler, ok := that.handlers[msg.Action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, msg.Action)
	}

	if err := handler(ctx, msg); err != nil {
		return err
	}

	return nil
}

// syncTiles - names every tile of the live match, the way the board was laid out.
func (that *Server) syncTiles() {
	match := that.game.Match()
	if match == nil {
		that.tiles.Reset()
		that.size = 0
		return
	}

	size := match.Board().Size()
	if size == that.size && that.tiles.Len() == int(size*size) {
		return
	}

	that.tiles = entity.NewTileIndex[string](size)
	for row := uint32(0); row < size; row++ {
		for col := uint32(0); col < size; col++ {
			that.tiles.Bind(entity.Coordinates{Row: row, Col: col}, fmt.Sprintf("Tile (%d, %d)", col, row))
		}
	}
	that.size = size
}
