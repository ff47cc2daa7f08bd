package engine

import (
	"fmt"
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/internal/systems"
	"github.com/Goluxas/roguelike-tutorial/pkg/dungeon"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Game - one play session: the world, its scheduler and the player.
//
// A Game is not safe for concurrent use; hosts serialize calls (the terminal
// client has one goroutine, the server one per connection).
type Game struct {
	cfg       Config
	world     *domain.World
	scheduler *Scheduler
	player    *domain.Entity
	catalog   *dungeon.Catalog
}

// NewGame builds a session from cfg and starts the engine. It returns once
// control reaches the player.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog, err := dungeon.NewCatalog(cfg.Templates...)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sched := NewScheduler(cfg.MaxTurnsPerRun)

	world, err := buildInitialWorld(cfg, catalog, sched, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		world:     world,
		scheduler: sched,
		player:    world.Player(),
		catalog:   catalog,
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"entities":  world.EntityCount(),
		"actors":    sched.Len(),
	}).Info("Game created.")

	g.scheduler.Start()
	return g, nil
}

func (g *Game) World() *domain.World { return g.world }
func (g *Game) Player() *domain.Entity { return g.player }
func (g *Game) Scheduler() *Scheduler { return g.scheduler }
func (g *Game) Catalog() *dungeon.Catalog { return g.catalog }
func (g *Game) Seed() int64 { return g.cfg.Seed }

// IsOver reports whether the player has died.
func (g *Game) IsOver() bool {
	return g.player.Player != nil && g.player.Player.GameOver
}

// Move tries to move the player by (dx, dy, dz) and hands the turn to the
// other actors. The turn is spent even when the move is refused. Returns
// whether the move did something.
func (g *Game) Move(dx, dy, dz int) bool {
	if g.IsOver() {
		return false
	}
	ok := g.player.TryMove(g.player.X()+dx, g.player.Y()+dy, g.player.Z()+dz)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"dx":        dx,
		"dy":        dy,
		"dz":        dz,
		"accepted":  ok,
	}).Debug("Player move.")

	g.endTurn()
	return ok
}

// Wait skips the player's turn.
func (g *Game) Wait() {
	if g.IsOver() {
		return
	}
	g.endTurn()
}

func (g *Game) endTurn() {
	g.scheduler.Unlock()
}

// Visibility computes the player's field of view (keyed y*width+x) and
// marks it explored.
func (g *Game) Visibility() map[int]bool {
	return systems.ComputeVisibleTiles(g.player)
}

// DrainMessages returns the player's pending messages and clears them.
func (g *Game) DrainMessages() []string {
	return g.player.DrainMessages()
}
