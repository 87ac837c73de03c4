package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// winLines - every row, column and both diagonals of a size×size board.
// A line wins when all of its size cells hold the same mark.
func winLines(size uint32) [][]entity.Coordinates {
	lines := make([][]entity.Coordinates, 0, 2*size+2)

	for i := uint32(0); i < size; i++ {
		row := make([]entity.Coordinates, size)
		col := make([]entity.Coordinates, size)
		for j := uint32(0); j < size; j++ {
			row[j] = entity.Coordinates{Row: i, Col: j}
			col[j] = entity.Coordinates{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}

	diagonal := make([]entity.Coordinates, size)
	antiDiagonal := make([]entity.Coordinates, size)
	for i := uint32(0); i < size; i++ {
		diagonal[i] = entity.Coordinates{Row: i, Col: i}
		antiDiagonal[i] = entity.Coordinates{Row: i, Col: size - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}

func checkMatchStatus(board *entity.Board) (Outcome, []entity.Coordinates) {
	for _, line := range winLines(board.Size()) {
		if mark := lineOwner(board, line); mark != entity.CellEmpty {
			return Outcome(mark), line
		}
	}

	// the match goes on until every cell is taken
	if !board.IsFull() {
		return OutcomeInProgress, nil
	}

	return OutcomeDraw, nil
}

func lineOwner(board *entity.Board, line []entity.Coordinates) entity.Cell {
	first, err := board.At(line[0])
	if err != nil || first == entity.CellEmpty {
		return entity.CellEmpty
	}

	for _, c := range line[1:] {
		if cell, err := board.At(c); err != nil || cell != first {
			return entity.CellEmpty
		}
	}

	return first
}
