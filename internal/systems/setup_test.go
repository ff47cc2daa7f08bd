package systems

import (
	"math/rand"
	"os"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// lockCounter stands in for the engine.
type lockCounter struct {
	actors []*domain.Entity
	locks  int
}

func (s *lockCounter) Add(e *domain.Entity) { s.actors = append(s.actors, e) }
func (s *lockCounter) Remove(e *domain.Entity) {
	for i, a := range s.actors {
		if a == e {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			return
		}
	}
}
func (s *lockCounter) Lock() { s.locks++ }
func (s *lockCounter) Unlock() {}

// Trait stand-ins wired to the behaviors under test.
var (
	moveable = &domain.Trait{
		Name:      domain.TraitMoveable,
		Behaviors: domain.Behaviors{TryMove: TryMove},
	}
	recipient = &domain.Trait{
		Name:      domain.TraitMessageRecipient,
		Behaviors: domain.Behaviors{ReceiveMessage: Deliver},
		Init: func(e *domain.Entity, _ domain.Template) {
			e.Inbox = &domain.InboxComponent{}
		},
	}
	destructible = &domain.Trait{
		Name:      domain.TraitDestructible,
		Behaviors: domain.Behaviors{TakeDamage: TakeDamage},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			maxHP := tmpl.Prop(domain.PropMaxHP, domain.DefaultMaxHP)
			e.Health = &domain.HealthComponent{
				HP:      tmpl.Prop(domain.PropHP, maxHP),
				MaxHP:   maxHP,
				Defense: tmpl.Prop(domain.PropDefenseValue, 0),
			}
		},
	}
	attacker = &domain.Trait{
		Name:      domain.TraitAttacker,
		Behaviors: domain.Behaviors{Attack: Attack},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			e.Combat = &domain.CombatComponent{Attack: tmpl.Prop(domain.PropAttackValue, domain.DefaultAttackValue)}
		},
	}
	playerActor = &domain.Trait{
		Name:      domain.TraitPlayerActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: PlayerTurn},
		Init: func(e *domain.Entity, _ domain.Template) {
			e.Player = &domain.PlayerComponent{}
		},
	}
	fungusActor = &domain.Trait{
		Name:      domain.TraitFungusActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: FungusTurn},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			e.Growth = &domain.GrowthComponent{Remaining: tmpl.Prop(domain.PropGrowths, domain.DefaultGrowths)}
		},
	}
	wanderActor = &domain.Trait{
		Name:      domain.TraitWanderActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: WanderTurn},
	}
)

// floorWorld is a walled room of floor on every level.
func floorWorld(width, height, depth int, seed int64) (*domain.World, *lockCounter) {
	grid := domain.NewTileGrid(width, height, depth, domain.WallTile)
	for z := 0; z < depth; z++ {
		for x := 1; x < width-1; x++ {
			for y := 1; y < height-1; y++ {
				grid[z][x][y] = domain.FloorTile
			}
		}
	}
	sched := &lockCounter{}
	return domain.NewWorld(grid, nil, sched, rand.New(rand.NewSource(seed))), sched
}

// place composes an entity and adds it at (x, y, z).
func place(w *domain.World, tmpl domain.Template, x, y, z int) *domain.Entity {
	e := domain.NewEntity(tmpl)
	e.SetPosition(x, y, z)
	w.AddEntity(e)
	return e
}
