package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/iamasit07/connect4/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	FinishedTTL    time.Duration
	StaleTTL       time.Duration
	log            *slog.Logger
}

func NewWorker(sm *game.SessionManager, interval, finishedTTL, staleTTL time.Duration, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		SessionManager: sm,
		Interval:       interval,
		FinishedTTL:    finishedTTL,
		StaleTTL:       staleTTL,
		log:            logger.With("component", "cleanup"),
	}
}

// Start runs one pass immediately, then one per Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	w.log.Debug("background worker started", "interval", w.Interval)

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	removed := w.SessionManager.CleanupOldSessions(time.Now(), w.FinishedTTL, w.StaleTTL)
	if removed > 0 {
		w.log.Info("removed expired sessions", "count", removed)
	}
	return removed
}
