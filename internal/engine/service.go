package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/internal/engine/handlers"
	"github.com/Goluxas/roguelike-tutorial/internal/engine/handlers/actions"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session wraps one Game behind the command protocol. Remote hosts keep one
// Session per connection; Execute and Summary may be called from different
// goroutines.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	cfg      Config
	game     *Game
	handlers map[domain.ActionType]handlers.HandlerFunc
}

// SessionSummary - a read-only view used by the debug endpoints.
type SessionSummary struct {
	ID       string    `json:"id"`
	Player   string    `json:"player"`
	Seed     int64     `json:"seed"`
	Turns    uint64    `json:"turns"`
	Level    int       `json:"level"`
	HP       int       `json:"hp"`
	Actors   int       `json:"actors"`
	GameOver bool      `json:"gameOver"`
	Created  time.Time `json:"created"`
}

// NewSession creates a session and its first game.
func NewSession(cfg Config) (*Session, error) {
	game, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.NewString(),
		Created:  time.Now(),
		cfg:      cfg,
		game:     game,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   s.ID,
		"seed":      cfg.Seed,
	}).Info("Session opened.")
	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionConfirm] = handlers.WithEmptyPayload(actions.HandleConfirm)
}

// Game returns the current game. It changes after INIT or CONFIRM.
func (s *Session) Game() *Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// Snapshot returns the player's current view without taking a turn.
func (s *Session) Snapshot() *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.BuildState()
}

// Execute runs one client command and returns the response to send back.
func (s *Session) Execute(cmd api.ClientCommand) *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := domain.ParseAction(cmd.Action)
	handler, ok := s.handlers[action]
	if !ok {
		return s.reject(cmd.Action, fmt.Errorf("unknown action %q", cmd.Action))
	}

	result, err := handler(handlers.Context{Session: (*controller)(s)}, cmd.Payload)
	if err != nil {
		return s.reject(cmd.Action, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   s.ID,
		"action":    action.String(),
		"took_turn": result.TookTurn,
		"restarted": result.Restarted,
	}).Debug("Command executed.")

	return s.game.BuildState()
}

func (s *Session) reject(action string, err error) *api.ServerResponse {
	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   s.ID,
		"action":    action,
	}).WithError(err).Warn("Command rejected.")

	return &api.ServerResponse{
		Type:     api.TypeError,
		Tick:     s.game.scheduler.Turns(),
		GameOver: s.game.IsOver(),
		Error:    err.Error(),
	}
}

// Summary reports the session state for debugging.
func (s *Session) Summary() SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.game.player
	sum := SessionSummary{
		ID:       s.ID,
		Player:   p.Name(),
		Seed:     s.game.Seed(),
		Turns:    s.game.scheduler.Turns(),
		Level:    p.Z(),
		Actors:   s.game.scheduler.Len(),
		GameOver: s.game.IsOver(),
		Created:  s.Created,
	}
	if p.Health != nil {
		sum.HP = p.Health.HP
	}
	return sum
}

// Rotation dumps the current game's turn order.
func (s *Session) Rotation() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.scheduler.DebugDump()
}

// controller exposes the session to handlers. Its methods run with s.mu
// already held by Execute.
type controller Session

var _ handlers.Controller = (*controller)(nil)

func (c *controller) Move(dx, dy, dz int) bool { return c.game.Move(dx, dy, dz) }
func (c *controller) Wait() { c.game.Wait() }
func (c *controller) IsOver() bool { return c.game.IsOver() }

// Restart builds a new game. An empty name keeps the current one; a nil
// seed draws a fresh seed.
func (c *controller) Restart(name string, seed *int64) error {
	cfg := c.cfg
	if name != "" {
		cfg.PlayerName = name
	}
	if seed != nil {
		cfg.Seed = *seed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := NewGame(cfg)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.game = game

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"session":   c.ID,
		"seed":      cfg.Seed,
		"player":    cfg.PlayerName,
	}).Info("Game restarted.")
	return nil
}
