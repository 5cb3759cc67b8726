package game

import (
	"log/slog"
	"sync"
	"time"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/pkg/uid"
)

const (
	ErrSessionNotFound domain.Error = "session not found"
	ErrGameInProgress  domain.Error = "game still in progress"
)

// Notifier receives every state change of a session. Renderers and outcome
// reporters implement it.
type Notifier interface {
	SendMessage(message domain.ServerMessage) error
}

type GameSession struct {
	GameID          string
	Player1Username string
	Player2Username string
	Game            *domain.Engine
	Reason          string
	CreatedAt       time.Time
	FinishedAt      time.Time
	mu              sync.Mutex
	notifier        Notifier
	log             *slog.Logger
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	log     *slog.Logger
}

func NewSessionManager(logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		Session: make(map[string]*GameSession),
		log:     logger.With("component", "session"),
	}
}

// CreateSession registers a new game and sends game_start to notifier.
// The notifier runs after the registry lock is released.
func (sm *SessionManager) CreateSession(player1Username, player2Username string, notifier Notifier) *GameSession {
	session := &GameSession{
		GameID:          uid.GenerateGameID(),
		Player1Username: player1Username,
		Player2Username: player2Username,
		Game:            domain.NewEngine(),
		CreatedAt:       time.Now(),
		notifier:        notifier,
	}
	session.log = sm.log.With("game_id", session.GameID)

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	sm.log.Info("created session", "game_id", session.GameID,
		"player1", player1Username, "player2", player2Username)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.sendStart()
	return session
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return ErrSessionNotFound
	}

	sm.log.Info("removing session", "game_id", gameID)
	delete(sm.Session, gameID)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupOldSessions drops finished sessions older than finishedTTL and
// unfinished ones older than staleTTL. It returns how many were removed.
func (sm *SessionManager) CleanupOldSessions(now time.Time, finishedTTL, staleTTL time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	for gameID, session := range sm.Session {
		finished, createdAt, finishedAt := session.lifetime()
		if finished {
			if now.Sub(finishedAt) > finishedTTL {
				delete(sm.Session, gameID)
				count++
			}
		} else if now.Sub(createdAt) > staleTTL {
			delete(sm.Session, gameID)
			count++
		}
	}

	if count > 0 {
		sm.log.Info("memory cleanup removed stale sessions", "count", count)
	}
	return count
}

func (gs *GameSession) lifetime() (finished bool, createdAt, finishedAt time.Time) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished(), gs.CreatedAt, gs.FinishedAt
}

func (gs *GameSession) GetUsername(playerID domain.PlayerID) string {
	if playerID == domain.Player1 {
		return gs.Player1Username
	}
	return gs.Player2Username
}

func (gs *GameSession) CurrentPlayer() domain.PlayerID {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.CurrentPlayer()
}

func (gs *GameSession) IsLegalMove(column int) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsLegalMove(column)
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished()
}

// HandleMove drops the current player's disk into column (0-based) and
// notifies the result. A rejected move changes nothing and notifies nobody.
func (gs *GameSession) HandleMove(column int) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	playerID, err := gs.Game.ApplyMove(column)
	if err != nil {
		gs.log.Debug("move rejected", "column", domain.ColumnLabel(column), "error", err)
		return err
	}

	row, _, _ := gs.Game.LastMove()
	gs.log.Debug("move made", "player", playerID, "column", domain.ColumnLabel(column), "row", row)

	gs.send(domain.ServerMessage{
		Type:       domain.MessageMoveMade,
		GameID:     gs.GameID,
		Column:     domain.ColumnLabel(column),
		Row:        row,
		Player:     playerID,
		PlayerName: gs.GetUsername(playerID),
		NextTurn:   gs.Game.CurrentPlayer(),
		Board:      gs.Game.Snapshot(),
		FillCounts: gs.Game.FillCounts(),
	})

	switch gs.Game.Status() {
	case domain.StatusWon:
		gs.finish(domain.ReasonConnectFour, gs.Game.Winner())
	case domain.StatusDraw:
		gs.finish(domain.ReasonDraw, domain.Empty)
	}

	return nil
}

// finish records the outcome and sends game_over. Caller must hold gs.mu.
func (gs *GameSession) finish(reason string, winner domain.PlayerID) {
	gs.FinishedAt = time.Now()
	gs.Reason = reason

	msg := domain.ServerMessage{
		Type:       domain.MessageGameOver,
		GameID:     gs.GameID,
		Winner:     winner,
		Reason:     reason,
		Board:      gs.Game.Snapshot(),
		FillCounts: gs.Game.FillCounts(),
	}
	if winner != domain.Empty {
		msg.WinnerName = gs.GetUsername(winner)
	}

	gs.log.Info("game over", "reason", reason, "winner", msg.WinnerName,
		"moves", gs.Game.Turn(), "duration", gs.FinishedAt.Sub(gs.CreatedAt).Round(time.Second))
	gs.send(msg)
}

// HandleRematch starts a fresh game in the same session once the current one
// has finished. Player order is kept.
func (gs *GameSession) HandleRematch() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.Game.IsFinished() {
		return ErrGameInProgress
	}

	gs.log.Info("starting rematch", "player1", gs.Player1Username, "player2", gs.Player2Username)

	gs.Game.Reset()
	gs.Reason = ""
	gs.FinishedAt = time.Time{}
	gs.CreatedAt = time.Now()

	gs.send(domain.ServerMessage{Type: domain.MessageRematchStarted, GameID: gs.GameID})
	gs.sendStart()
	return nil
}

// sendStart announces a fresh game. Caller must hold gs.mu.
func (gs *GameSession) sendStart() {
	gs.send(domain.ServerMessage{
		Type:       domain.MessageGameStart,
		GameID:     gs.GameID,
		NextTurn:   gs.Game.CurrentPlayer(),
		PlayerName: gs.GetUsername(gs.Game.CurrentPlayer()),
		Board:      gs.Game.Snapshot(),
		FillCounts: gs.Game.FillCounts(),
	})
}

func (gs *GameSession) send(msg domain.ServerMessage) {
	if gs.notifier == nil {
		return
	}
	if err := gs.notifier.SendMessage(msg); err != nil {
		gs.log.Warn("failed to deliver message", "type", msg.Type, "error", err)
	}
}
