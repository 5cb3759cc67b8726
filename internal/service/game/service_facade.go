package game

import "log/slog"

// Service is the entry point for game logic (facade)
type Service struct {
	Sessions        *SessionManager
	Player1Username string
	Player2Username string
}

func NewService(sessions *SessionManager, player1Username, player2Username string) *Service {
	return &Service{
		Sessions:        sessions,
		Player1Username: player1Username,
		Player2Username: player2Username,
	}
}

// NewGame opens a session between the configured players.
func (s *Service) NewGame(notifier Notifier) *GameSession {
	slog.Debug("opening local game", "player1", s.Player1Username, "player2", s.Player2Username)
	return s.Sessions.CreateSession(s.Player1Username, s.Player2Username, notifier)
}
