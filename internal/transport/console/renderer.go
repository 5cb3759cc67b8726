package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect4/internal/domain"
	"golang.org/x/text/message"
)

// Renderer draws the grid and the outcome of a session to a terminal.
type Renderer struct {
	out     io.Writer
	printer *message.Printer
}

func NewRenderer(out io.Writer, printer *message.Printer) *Renderer {
	return &Renderer{out: out, printer: printer}
}

func (r *Renderer) SendMessage(msg domain.ServerMessage) error {
	switch msg.Type {
	case domain.MessageGameStart, domain.MessageMoveMade:
		return DrawBoard(r.out, msg.Board)
	case domain.MessageGameOver:
		var outcome string
		if msg.Winner == domain.Empty {
			outcome = r.printer.Sprintf(msgDraw)
		} else {
			outcome = r.printer.Sprintf(msgWins, strings.ToUpper(msg.WinnerName))
		}
		if _, err := fmt.Fprintln(r.out, outcome); err != nil {
			return err
		}
		return DrawBoard(r.out, msg.Board)
	case domain.MessageRematchStarted:
		_, err := fmt.Fprintln(r.out)
		return err
	default:
		return nil
	}
}

// DrawBoard writes the grid row by row with a footer of column labels:
//
//	+---+---+
//	| R |   |
//	+---+---+
//	| 1 | 2 |
//	+---+---+
func DrawBoard(out io.Writer, board [][]domain.PlayerID) error {
	if len(board) == 0 {
		return nil
	}
	columns := len(board[0])
	separator := strings.Repeat("+---", columns) + "+"

	w := bufio.NewWriter(out)
	for _, row := range board {
		fmt.Fprintln(w, separator)
		for _, cell := range row {
			fmt.Fprintf(w, "| %c ", cell.Token())
		}
		fmt.Fprintln(w, "|")
	}

	fmt.Fprintln(w, separator)
	for col := 0; col < columns; col++ {
		fmt.Fprintf(w, "| %d ", domain.ColumnLabel(col))
	}
	fmt.Fprintln(w, "|")
	fmt.Fprintln(w, separator)

	return w.Flush()
}
