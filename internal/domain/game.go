package domain

import "fmt"

// Engine owns one game: the grid, per-column fill counters and the turn
// counter. It is not safe for concurrent use; create one per session.
type Engine struct {
	board   *Board
	filled  []int
	turn    int
	status  GameStatus
	winner  PlayerID
	lastRow int
	lastCol int
}

func NewEngine() *Engine {
	return newEngine(PlayableRows, Columns)
}

func newEngine(playableRows, columns int) *Engine {
	e := &Engine{
		board:  NewBoard(playableRows, columns),
		filled: make([]int, columns),
	}
	e.Reset()
	return e
}

// Reset empties the grid and zeroes every counter.
func (e *Engine) Reset() {
	e.board.Clear()
	for c := range e.filled {
		e.filled[c] = 0
	}
	e.turn = 0
	e.status = StatusActive
	e.winner = Empty
	e.lastRow, e.lastCol = -1, -1
}

func (e *Engine) IsLegalMove(col int) bool {
	if e.status.IsTerminal() {
		return false
	}
	if col < 0 || col >= e.board.Columns() {
		return false
	}
	return e.filled[col] < e.board.Rows()
}

// ApplyMove drops the current player's disk into col and returns that player.
// A rejected move leaves the engine untouched.
func (e *Engine) ApplyMove(col int) (PlayerID, error) {
	if e.status.IsTerminal() {
		return Empty, ErrGameOver
	}

	if col < 0 || col >= e.board.Columns() {
		return Empty, fmt.Errorf("%w: column %d out of range 1-%d", ErrInvalidMove, ColumnLabel(col), e.board.Columns())
	}
	if e.filled[col] >= e.board.Rows() {
		return Empty, fmt.Errorf("%w: column %d is full", ErrInvalidMove, ColumnLabel(col))
	}

	player := e.CurrentPlayer()
	row, err := e.board.Drop(col, player)
	if err != nil {
		return Empty, err
	}

	e.filled[col]++
	e.turn++
	e.lastRow, e.lastCol = row, col

	// only the mover's colour can have just completed a line
	if e.CheckWin(player) {
		e.status = StatusWon
		e.winner = player
		return player, nil
	}

	if e.IsDraw() {
		e.status = StatusDraw
	}

	return player, nil
}

// IsDraw is true once every column holds PlayableRows disks.
func (e *Engine) IsDraw() bool {
	for _, n := range e.filled {
		if n != e.board.Rows() {
			return false
		}
	}
	return true
}

// CheckWin scans the whole grid for four of lastPlayer's disks in a row.
// Only the player who just moved can have completed a line.
func (e *Engine) CheckWin(lastPlayer PlayerID) bool {
	return CheckWin(e.board, lastPlayer)
}

// CurrentPlayer is derived from turn parity: even turns belong to Player1.
func (e *Engine) CurrentPlayer() PlayerID {
	if e.turn%2 == 0 {
		return Player1
	}
	return Player2
}

func (e *Engine) Status() GameStatus { return e.status }
func (e *Engine) Winner() PlayerID { return e.winner }
func (e *Engine) Turn() int { return e.turn }
func (e *Engine) IsFinished() bool { return e.status.IsTerminal() }
func (e *Engine) Columns() int { return e.board.Columns() }
func (e *Engine) PlayableRows() int { return e.board.Rows() }

func (e *Engine) Cell(row, col int) PlayerID {
	return e.board.Cell(row, col)
}

// FillCount returns how many disks column col holds, or 0 when out of range.
func (e *Engine) FillCount(col int) int {
	if col < 0 || col >= len(e.filled) {
		return 0
	}
	return e.filled[col]
}

func (e *Engine) FillCounts() []int {
	counts := make([]int, len(e.filled))
	copy(counts, e.filled)
	return counts
}

func (e *Engine) Snapshot() [][]PlayerID {
	return e.board.Snapshot()
}

// LastMove reports where the most recent disk landed.
func (e *Engine) LastMove() (row, col int, ok bool) {
	if e.lastCol < 0 {
		return -1, -1, false
	}
	return e.lastRow, e.lastCol, true
}
