package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playLabels applies moves given as 1-based column labels.
func playLabels(t *testing.T, e *Engine, labels ...int) PlayerID {
	t.Helper()
	var last PlayerID
	for i, label := range labels {
		p, err := e.ApplyMove(ColumnIndex(label))
		require.NoErrorf(t, err, "move %d (column %d)", i+1, label)
		last = p
	}
	return last
}

func TestNewEngineIsEmpty(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, Columns, e.Columns())
	assert.Equal(t, PlayableRows, e.PlayableRows())
	assert.Equal(t, 0, e.Turn())
	assert.Equal(t, Player1, e.CurrentPlayer())
	assert.Equal(t, StatusActive, e.Status())
	assert.False(t, e.CheckWin(Player1))
	assert.False(t, e.CheckWin(Player2))
	assert.False(t, e.IsDraw())

	_, _, ok := e.LastMove()
	assert.False(t, ok)

	for row := 0; row < e.PlayableRows(); row++ {
		for col := 0; col < e.Columns(); col++ {
			assert.Equal(t, Empty, e.Cell(row, col))
		}
	}
}

func TestResetIsIdempotent(t *testing.T) {
	e := NewEngine()
	playLabels(t, e, 1, 2, 3, 4)

	e.Reset()
	e.Reset()

	assert.Equal(t, 0, e.Turn())
	assert.Equal(t, StatusActive, e.Status())
	assert.Equal(t, Empty, e.Winner())
	assert.Equal(t, make([]int, Columns), e.FillCounts())
	for col := 0; col < Columns; col++ {
		assert.Equal(t, Empty, e.Cell(PlayableRows-1, col))
	}
}

func TestIsLegalMove(t *testing.T) {
	e := NewEngine()

	for _, label := range []int{-1, 0, Columns + 1, 100} {
		assert.Falsef(t, e.IsLegalMove(ColumnIndex(label)), "label %d", label)
	}
	for label := 1; label <= Columns; label++ {
		assert.Truef(t, e.IsLegalMove(ColumnIndex(label)), "label %d", label)
	}

	// both players alternate in column 1, so nobody lines up four
	for i := 0; i < PlayableRows; i++ {
		require.True(t, e.IsLegalMove(0))
		playLabels(t, e, 1)
	}

	assert.Equal(t, PlayableRows, e.FillCount(0))
	assert.False(t, e.IsLegalMove(0))
	assert.True(t, e.IsLegalMove(1))
}

func TestApplyMoveRejectsIllegalColumnsWithoutMutation(t *testing.T) {
	e := NewEngine()
	playLabels(t, e, 4)
	before := e.Snapshot()
	turn := e.Turn()

	for _, col := range []int{-1, Columns, Columns + 5} {
		p, err := e.ApplyMove(col)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMove))
		assert.Equal(t, Empty, p)
	}

	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, turn, e.Turn())
	assert.Equal(t, Player2, e.CurrentPlayer())
}

func TestApplyMoveRejectsFullColumn(t *testing.T) {
	e := NewEngine()
	for i := 0; i < PlayableRows; i++ {
		playLabels(t, e, 3)
	}
	before := e.FillCounts()
	turn := e.Turn()

	_, err := e.ApplyMove(ColumnIndex(3))
	require.ErrorIs(t, err, ErrInvalidMove)
	assert.Contains(t, err.Error(), "column 3 is full")
	assert.Equal(t, before, e.FillCounts())
	assert.Equal(t, turn, e.Turn())
}

func TestTurnsAlternate(t *testing.T) {
	e := NewEngine()
	want := Player1
	for _, label := range []int{1, 2, 3, 4, 5, 6, 7, 1, 2} {
		p, err := e.ApplyMove(ColumnIndex(label))
		require.NoError(t, err)
		assert.Equal(t, want, p)
		want = Opponent(want)
	}
	assert.Equal(t, 9, e.Turn())
}

func TestGravityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := 0; game < 50; game++ {
		e := NewEngine()
		for !e.IsFinished() {
			col := rng.Intn(Columns)
			if !e.IsLegalMove(col) {
				continue
			}
			want := PlayableRows - 1 - e.FillCount(col)

			p, err := e.ApplyMove(col)
			require.NoError(t, err)

			row, gotCol, ok := e.LastMove()
			require.True(t, ok)
			assert.Equal(t, col, gotCol)
			assert.Equal(t, want, row)
			assert.Equal(t, p, e.Cell(row, col))

			occupied, sum := 0, 0
			for c := 0; c < Columns; c++ {
				sum += e.FillCount(c)
				seenDisk := false
				for r := 0; r < PlayableRows; r++ {
					if e.Cell(r, c) != Empty {
						occupied++
						seenDisk = true
					} else {
						require.Falsef(t, seenDisk, "empty cell below a disk at (%d,%d)", r, c)
					}
				}
			}
			assert.Equal(t, occupied, sum)
			assert.Equal(t, occupied, e.Turn())
		}
	}
}

func TestWinDetection(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
	}{
		{"horizontal", []int{1, 1, 2, 2, 3, 3, 4}},
		{"vertical", []int{1, 2, 1, 2, 1, 2, 1}},
		{"ascending right diagonal", []int{1, 2, 2, 3, 3, 4, 3, 4, 4, 7, 4}},
		{"ascending left diagonal", []int{7, 6, 6, 5, 5, 4, 5, 4, 4, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			last := tt.moves[len(tt.moves)-1]
			playLabels(t, e, tt.moves[:len(tt.moves)-1]...)
			require.False(t, e.CheckWin(Player1))
			require.Equal(t, StatusActive, e.Status())

			p := playLabels(t, e, last)

			assert.Equal(t, Player1, p)
			assert.True(t, e.CheckWin(p))
			assert.False(t, e.CheckWin(Player2))
			assert.Equal(t, StatusWon, e.Status())
			assert.Equal(t, Player1, e.Winner())
		})
	}
}

func TestBrokenDiagonalIsNotAWin(t *testing.T) {
	e := NewEngine()
	playLabels(t, e, 1, 2, 2, 3, 3, 4, 3, 4, 4, 4, 7)

	// Player2 took the fourth square of Player1's diagonal
	assert.Equal(t, Player2, e.Cell(PlayableRows-4, 3))
	assert.Equal(t, Player1, e.Cell(PlayableRows-1, 0))
	assert.Equal(t, Player1, e.Cell(PlayableRows-2, 1))
	assert.Equal(t, Player1, e.Cell(PlayableRows-3, 2))
	assert.False(t, e.CheckWin(Player1))
	assert.False(t, e.CheckWin(Player2))

	b := NewBoard(PlayableRows, Columns)
	for i := 0; i < ToWin; i++ {
		b.cells[PlayableRows-1-i][Columns-1-i] = Player2
	}
	assert.True(t, CheckWin(b, Player2))
	b.cells[PlayableRows-3][Columns-3] = Player1
	assert.False(t, CheckWin(b, Player2))
	assert.False(t, CheckWin(b, Player1))
}

func TestCheckWinIgnoresEmpty(t *testing.T) {
	assert.False(t, CheckWin(NewBoard(PlayableRows, Columns), Empty))
}

func TestEndToEndVerticalWin(t *testing.T) {
	e := NewEngine()
	moves := []int{1, 2, 1, 2, 1, 2, 1}

	var last PlayerID
	for i, label := range moves {
		p, err := e.ApplyMove(ColumnIndex(label))
		require.NoError(t, err)
		last = p
		if i < len(moves)-1 {
			assert.False(t, e.CheckWin(p), "no win before the 7th move")
		}
	}

	assert.True(t, e.CheckWin(last))
	assert.Equal(t, Player1, last)
	assert.Equal(t, Player1, e.Winner())
	assert.Equal(t, 4, e.FillCount(0))
	assert.Equal(t, 3, e.FillCount(1))

	_, err := e.ApplyMove(ColumnIndex(3))
	assert.ErrorIs(t, err, ErrGameOver)
	assert.False(t, e.IsLegalMove(ColumnIndex(3)))
	assert.Equal(t, 7, e.Turn())
}

func TestDrawScenario(t *testing.T) {
	e := NewEngine()
	moves := []int{
		1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3,
		5, 4, 4, 4, 4, 4, 4,
		5, 5, 5, 5, 5,
		6, 6, 6, 6, 6, 6,
		7, 7, 7, 7, 7, 7,
	}
	require.Len(t, moves, PlayableRows*Columns)

	for i, label := range moves {
		require.False(t, e.IsDraw(), "draw before move %d", i+1)
		p, err := e.ApplyMove(ColumnIndex(label))
		require.NoError(t, err)
		require.Falsef(t, e.CheckWin(p), "unexpected win at move %d", i+1)
	}

	assert.True(t, e.IsDraw())
	assert.Equal(t, StatusDraw, e.Status())
	assert.Equal(t, Empty, e.Winner())
	for col := 0; col < Columns; col++ {
		assert.Equal(t, PlayableRows, e.FillCount(col))
		assert.False(t, e.IsLegalMove(col))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := NewEngine()
	playLabels(t, e, 4)

	snap := e.Snapshot()
	snap[PlayableRows-1][3] = Player2

	assert.Equal(t, Player1, e.Cell(PlayableRows-1, 3))
}

func TestSmallerBoardsUseTheSameRules(t *testing.T) {
	e := newEngine(4, 5)
	playLabels(t, e, 1, 2, 1, 2, 1, 2)
	assert.False(t, e.IsFinished())

	p := playLabels(t, e, 1)
	assert.Equal(t, Player1, p)
	assert.Equal(t, StatusWon, e.Status())
	assert.False(t, e.IsLegalMove(0))
}
