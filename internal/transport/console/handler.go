package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
	"golang.org/x/text/message"
)

// Handler runs local games: it reads moves from one terminal and renders
// every change back to it.
type Handler struct {
	GameService  *game.Service
	Input        *Input
	Renderer     *Renderer
	AllowRematch bool
	out          io.Writer
	printer      *message.Printer
	log          *slog.Logger
}

func NewHandler(gs *game.Service, in io.Reader, out io.Writer, printer *message.Printer, allowRematch bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		GameService:  gs,
		Input:        NewInput(in, out, printer),
		Renderer:     NewRenderer(out, printer),
		AllowRematch: allowRematch,
		out:          out,
		printer:      printer,
		log:          logger.With("component", "console"),
	}
}

// Run plays until the players decline a rematch, input ends, or ctx is done.
// Running out of input is a normal way to quit.
func (h *Handler) Run(ctx context.Context) error {
	session := h.GameService.NewGame(h.Renderer)
	defer func() {
		if err := h.GameService.Sessions.RemoveSession(session.GameID); err != nil {
			h.log.Warn("session already removed", "game_id", session.GameID, "error", err)
		}
	}()

	for {
		if err := h.playOne(ctx, session); err != nil {
			if errors.Is(err, io.EOF) {
				h.log.Info("input closed, leaving game", "game_id", session.GameID)
				return nil
			}
			return err
		}

		if !h.AllowRematch {
			return nil
		}
		again, err := h.Input.Confirm(ctx, h.printer.Sprintf(msgPlayAgain))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(h.out, h.printer.Sprintf(msgGoodbye))
			return nil
		}
		if err := session.HandleRematch(); err != nil {
			return err
		}
	}
}

func (h *Handler) playOne(ctx context.Context, session *game.GameSession) error {
	for !session.IsFinished() {
		name := session.GetUsername(session.CurrentPlayer())
		column, err := h.Input.ReadColumn(ctx, name, session.IsLegalMove)
		if err != nil {
			return err
		}

		if err := session.HandleMove(column); err != nil {
			// the column filled up between check and move; ask again
			if errors.Is(err, domain.ErrInvalidMove) {
				continue
			}
			return err
		}
	}
	return nil
}
