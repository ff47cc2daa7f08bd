package systems

import (
	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// FungusGrowthChance is the per-turn probability that a fungus spreads.
const FungusGrowthChance = 0.02

// PlayerTurn - the PlayerActor behavior. The player never acts on its own:
// its turn hands control back to the host by locking the engine. A dead
// player raises the game-over flag once and says so.
func PlayerTurn(e *domain.Entity) {
	if e.Health != nil && e.Health.HP <= 0 && e.Player != nil && !e.Player.GameOver {
		e.Player.GameOver = true
		SendMessage(e, "You have died... Press [Enter] to continue!")

		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"entity_id": e.ID,
		}).Info("Player died.")
	}

	if w := e.World(); w != nil && w.Scheduler() != nil {
		w.Scheduler().Lock()
	}
}

// FungusTurn - the FungusActor behavior: occasionally clone itself into an
// adjacent empty floor cell, at most Growth.Remaining more times.
func FungusTurn(e *domain.Entity) {
	w := e.World()
	if w == nil || e.Growth == nil || e.Growth.Remaining <= 0 {
		return
	}

	rng := rngOf(e)
	if rng.Float64() >= FungusGrowthChance {
		return
	}

	dx, dy := rng.Intn(3)-1, rng.Intn(3)-1
	if dx == 0 && dy == 0 {
		return
	}
	x, y, z := e.X()+dx, e.Y()+dy, e.Z()
	if !w.IsEmptyFloor(x, y, z) {
		return
	}

	offspring := domain.NewEntity(e.Template())
	offspring.SetPosition(x, y, z)
	w.AddEntity(offspring)
	e.Growth.Remaining--

	logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"parent_id": e.ID,
		"child_id":  offspring.ID,
		"remaining": e.Growth.Remaining,
	}).Debug("Fungus spread.")

	SendMessageNearby(w, x, y, z, "The fungus is spreading!")
}

// WanderTurn - the WanderActor behavior: one random step along x or y.
func WanderTurn(e *domain.Entity) {
	if e.World() == nil {
		return
	}
	rng := rngOf(e)

	step := rng.Intn(2)*2 - 1
	if rng.Intn(2) == 0 {
		e.TryMove(e.X()+step, e.Y(), e.Z())
	} else {
		e.TryMove(e.X(), e.Y()+step, e.Z())
	}
}
