package domain

import "strconv"

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Token is the character a player's disk is drawn with.
func (p PlayerID) Token() byte {
	switch p {
	case Player1:
		return 'R'
	case Player2:
		return 'Y'
	default:
		return ' '
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1, Player2:
		return "player " + strconv.Itoa(int(p))
	default:
		return "empty"
	}
}

// Opponent returns the other player. Empty has no opponent.
func Opponent(p PlayerID) PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// Rows is the nominal grid height. The top row is an overflow guard that never
// holds a disk, so only PlayableRows rows are stored.
const (
	Rows         = 7
	Columns      = 7
	PlayableRows = Rows - 1
	ToWin        = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove Error = "invalid move"
	ErrGameOver    Error = "game is over"
)

// Message types sent to whoever renders a session.
const (
	MessageGameStart      = "game_start"
	MessageMoveMade       = "move_made"
	MessageGameOver       = "game_over"
	MessageRematchStarted = "rematch_started"
)

// Game over reasons.
const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// ServerMessage is a state change of a session, carrying everything a
// renderer needs to redraw the grid and report the outcome.
type ServerMessage struct {
	Type       string       `json:"type"`
	GameID     string       `json:"gameId,omitempty"`
	Column     int          `json:"column,omitempty"`
	Row        int          `json:"row,omitempty"`
	Player     PlayerID     `json:"player,omitempty"`
	PlayerName string       `json:"playerName,omitempty"`
	NextTurn   PlayerID     `json:"nextTurn,omitempty"`
	Board      [][]PlayerID `json:"board,omitempty"`
	FillCounts []int        `json:"fillCounts,omitempty"`
	Winner     PlayerID     `json:"winner,omitempty"`
	WinnerName string       `json:"winnerName,omitempty"`
	Reason     string       `json:"reason,omitempty"`
}
