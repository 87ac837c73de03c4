package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type State string

const (
	StateInit     State = "init"
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Outcome - "" while the match goes on, the winning mark, or "-" for a draw.
type Outcome string

const (
	OutcomeInProgress Outcome = ""
	OutcomeWinX       Outcome = Outcome(entity.CellX)
	OutcomeWinO       Outcome = Outcome(entity.CellO)
	OutcomeDraw       Outcome = "-"
)

func (that Outcome) IsFinal() bool {
	return that != OutcomeInProgress
}

// Winner - the winning mark, or CellEmpty on a draw or while in progress.
func (that Outcome) Winner() entity.Cell {
	switch that {
	case OutcomeWinX:
		return entity.CellX
	case OutcomeWinO:
		return entity.CellO
	default:
		return entity.CellEmpty
	}
}

type Move struct {
	Coordinates entity.Coordinates `json:"coordinates"`
	Mark        entity.Cell        `json:"mark"`
}

// Match - one playthrough: the board, whose turn it is and how it ended.
type Match struct {
	board       *entity.Board
	state       State
	turn        entity.Cell
	outcome     Outcome
	winningLine []entity.Coordinates
	moves       []Move
}

// NewMatch - allocates an empty board and starts play with X to move.
func NewMatch(size uint32) (*Match, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	match := &Match{
		board: board,
		state: StateInit,
		turn:  entity.CellEmpty,
	}
	match.start()

	return match, nil
}

func (that *Match) start() {
	that.state = StatePlaying
	that.turn = entity.CellX
}

// AttemptMove - places the current player's mark. On error nothing changes.
func (that *Match) AttemptMove(c entity.Coordinates) error {
	if that.state != StatePlaying {
		return apperror.ErrMatchFinished
	}

	if err := that.board.Set(c, that.turn); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.moves = append(that.moves, Move{Coordinates: c, Mark: that.turn})
	that.updateMatchStatus()

	return nil
}

// updateMatchStatus - checks the board after a move.
func (that *Match) updateMatchStatus() {
	outcome, line := checkMatchStatus(that.board)

	that.outcome = outcome
	that.winningLine = line

	if outcome.IsFinal() {
		that.state = StateGameOver
		return
	}

	that.turn = toggleMark(that.turn)
}

// Board - a copy of the grid. Moves go through AttemptMove only.
func (that *Match) Board() *entity.Board {
	return that.board.Clone()
}

func (that *Match) State() State {
	return that.state
}

// Turn - the mark to move next. It keeps the last mover once the match is over.
func (that *Match) Turn() entity.Cell {
	return that.turn
}

func (that *Match) Outcome() Outcome {
	return that.outcome
}

func (that *Match) IsOver() bool {
	return that.state == StateGameOver
}

func (that *Match) WinningLine() []entity.Coordinates {
	return append([]entity.Coordinates(nil), that.winningLine...)
}

func (that *Match) Moves() []Move {
	return append([]Move(nil), that.moves...)
}

func toggleMark(currentMark entity.Cell) entity.Cell {
	if currentMark == entity.CellX {
		return entity.CellO
	}
	return entity.CellX
}
