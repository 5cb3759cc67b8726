package domain

import "fmt"

// Board is a gravity-fed grid. Row 0 is the top, the last row is the bottom.
type Board struct {
	rows  int
	cols  int
	cells [][]PlayerID
}

func NewBoard(rows, cols int) *Board {
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Columns() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell returns the disk at (row, col), or Empty when out of bounds.
func (b *Board) Cell(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) Clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty
		}
	}
}

// Drop settles a disk in the lowest empty row of col and returns that row.
func (b *Board) Drop(col int, player PlayerID) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, ColumnLabel(col))
	}

	// scanning upward from the bottom row
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = player
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d is full", ErrInvalidMove, ColumnLabel(col))
}

// this creates a deep copy of the grid
func CopyBoard(board [][]PlayerID) [][]PlayerID {
	newBoard := make([][]PlayerID, len(board))
	for i := range board {
		newBoard[i] = make([]PlayerID, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

func (b *Board) Snapshot() [][]PlayerID {
	return CopyBoard(b.cells)
}

// ColumnLabel converts an internal column index to the 1-based label users see.
func ColumnLabel(col int) int {
	return col + 1
}

// ColumnIndex converts a user-facing label to an internal column index.
func ColumnIndex(label int) int {
	return label - 1
}
