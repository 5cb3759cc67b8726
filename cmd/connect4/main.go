package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/logging"
	"github.com/iamasit07/connect4/internal/service/cleanup"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/console"
)

func main() {
	// minimal logger until the configured one is built
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// a second interrupt kills the process outright
	context.AfterFunc(ctx, stop)

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the application together and plays until the players stop.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sessions := game.NewSessionManager(logger)
	worker := cleanup.NewWorker(sessions, cfg.CleanupInterval, cfg.SessionTTL, cfg.StaleSessionTTL, logger)
	go worker.Start(ctx)

	gameService := game.NewService(sessions, cfg.Player1Name, cfg.Player2Name)
	handler := console.NewHandler(gameService, in, out, console.NewPrinter(cfg.Locale), cfg.AllowRematch, logger)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}
