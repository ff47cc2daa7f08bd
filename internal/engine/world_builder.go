package engine

import (
	"fmt"
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/dungeon"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// buildInitialWorld creates every level, the player and the starting
// creatures. Actors are registered with sched as they are placed, the player
// first.
func buildInitialWorld(cfg Config, catalog *dungeon.Catalog, sched domain.Scheduler, rng *rand.Rand) (*domain.World, error) {
	// 1. Terrain
	grid := dungeon.Generate(cfg.Dungeon, rng)

	// 2. Player on a random floor cell of level 0
	player, err := catalog.CreatePlayer(cfg.PlayerName)
	if err != nil {
		return nil, err
	}
	world := domain.NewWorld(grid, player, sched, rng)

	// 3. Creatures, level by level
	for z := 0; z < world.Depth(); z++ {
		placed := 0
		for _, rule := range cfg.Spawns {
			if z < rule.MinLevel {
				continue
			}
			for i := 0; i < rule.PerLevel; i++ {
				x, y, ok := world.RandomFloorPosition(z)
				if !ok {
					logger.Log.WithFields(logrus.Fields{
						"component": "world_builder",
						"level":     z,
						"template":  rule.Template,
					}).Warn("Level is full, skipping remaining spawns.")
					break
				}

				e, err := catalog.Spawn(rule.Template)
				if err != nil {
					return nil, fmt.Errorf("spawn on level %d: %w", z, err)
				}
				e.SetPosition(x, y, z)
				world.AddEntity(e)
				placed++
			}
		}

		logger.Log.WithFields(logrus.Fields{
			"component": "world_builder",
			"level":     z,
			"creatures": placed,
		}).Debug("Level populated.")
	}

	return world, nil
}
