package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Cell string

const (
	CellEmpty Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"
)

func (that Cell) String() string {
	if that == CellEmpty {
		return "."
	}

	return string(that)
}

// Coordinates - row and column of a cell, both counted from the top-left corner.
type Coordinates struct {
	Row uint32 `json:"row"`
	Col uint32 `json:"col"`
}

func (that Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// MaxBoardSize - the largest side NewBoard accepts.
const MaxBoardSize uint32 = 1024

// Board - a square grid of cells stored row-major.
type Board struct {
	size  uint32
	cells []Cell
}

// NewBoard - creates an empty size×size board.
func NewBoard(size uint32) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d, want 1..%d", apperror.ErrInvalidSize, size, MaxBoardSize)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, int(size)*int(size)),
	}, nil
}

// Clone - a detached copy. Writes to it never reach the original.
func (that *Board) Clone() *Board {
	return &Board{
		size:  that.size,
		cells: append([]Cell(nil), that.cells...),
	}
}

func (that *Board) Size() uint32 {
	return that.size
}

func (that *Board) InBounds(c Coordinates) bool {
	return c.Row < that.size && c.Col < that.size
}

func (that *Board) At(c Coordinates) (Cell, error) {
	if !that.InBounds(c) {
		return CellEmpty, fmt.Errorf("%w: %s on %dx%d board", apperror.ErrOutOfBounds, c, that.size, that.size)
	}

	return that.cells[that.index(c)], nil
}

// Set - writes a mark into an empty cell. A placed mark is never overwritten.
func (that *Board) Set(c Coordinates, value Cell) error {
	if value != CellX && value != CellO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(value))
	}

	if !that.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d board", apperror.ErrOutOfBounds, c, that.size, that.size)
	}

	idx := that.index(c)
	if that.cells[idx] != CellEmpty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	that.cells[idx] = value

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

// Rows - returns a copy of the grid, one slice per row.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		start := row * int(that.size)
		rows[row] = append([]Cell(nil), that.cells[start:start+int(that.size)]...)
	}

	return rows
}

// String - renders the board for diagnostics, one row per line.
func (that *Board) String() string {
	var sb strings.Builder

	for row := uint32(0); row < that.size; row++ {
		for col := uint32(0); col < that.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cells[that.index(Coordinates{Row: row, Col: col})].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) index(c Coordinates) int {
	return int(c.Row)*int(that.size) + int(c.Col)
}
