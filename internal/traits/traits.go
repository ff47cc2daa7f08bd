// Package traits holds the capability bundles creatures are composed from.
//
// Each trait wires one behavior from the systems package into its slot and
// seeds the component that behavior needs. Traits are shared values: list
// the same pointer in any number of templates.
package traits

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/internal/systems"
)

var ErrUnknownTrait = errors.New("unknown trait")

var (
	Moveable = &domain.Trait{
		Name:      domain.TraitMoveable,
		Behaviors: domain.Behaviors{TryMove: systems.TryMove},
	}

	PlayerActor = &domain.Trait{
		Name:      domain.TraitPlayerActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: systems.PlayerTurn},
		Init: func(e *domain.Entity, _ domain.Template) {
			e.Player = &domain.PlayerComponent{}
		},
	}

	FungusActor = &domain.Trait{
		Name:      domain.TraitFungusActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: systems.FungusTurn},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			e.Growth = &domain.GrowthComponent{
				Remaining: tmpl.Prop(domain.PropGrowths, domain.DefaultGrowths),
			}
		},
	}

	WanderActor = &domain.Trait{
		Name:      domain.TraitWanderActor,
		Group:     domain.GroupActor,
		Behaviors: domain.Behaviors{Act: systems.WanderTurn},
	}

	// Destructible reads maxHp, hp (defaults to maxHp) and defenseValue.
	Destructible = &domain.Trait{
		Name:      domain.TraitDestructible,
		Behaviors: domain.Behaviors{TakeDamage: systems.TakeDamage},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			maxHP := tmpl.Prop(domain.PropMaxHP, domain.DefaultMaxHP)
			e.Health = &domain.HealthComponent{
				HP:      tmpl.Prop(domain.PropHP, maxHP),
				MaxHP:   maxHP,
				Defense: tmpl.Prop(domain.PropDefenseValue, 0),
			}
		},
	}

	Attacker = &domain.Trait{
		Name:      domain.TraitAttacker,
		Behaviors: domain.Behaviors{Attack: systems.Attack},
		Init: func(e *domain.Entity, tmpl domain.Template) {
			e.Combat = &domain.CombatComponent{
				Attack: tmpl.Prop(domain.PropAttackValue, domain.DefaultAttackValue),
			}
		},
	}

	MessageRecipient = &domain.Trait{
		Name:      domain.TraitMessageRecipient,
		Behaviors: domain.Behaviors{ReceiveMessage: systems.Deliver},
		Init: func(e *domain.Entity, _ domain.Template) {
			e.Inbox = &domain.InboxComponent{}
		},
	}

	Sight = &domain.Trait{
		Name: domain.TraitSight,
		Init: func(e *domain.Entity, tmpl domain.Template) {
			e.Vision = &domain.VisionComponent{
				Radius: tmpl.Prop(domain.PropSightRadius, domain.DefaultSightRadius),
			}
		},
	}
)

var registry = map[string]*domain.Trait{
	domain.TraitMoveable:         Moveable,
	domain.TraitPlayerActor:      PlayerActor,
	domain.TraitFungusActor:      FungusActor,
	domain.TraitWanderActor:      WanderActor,
	domain.TraitDestructible:     Destructible,
	domain.TraitAttacker:         Attacker,
	domain.TraitMessageRecipient: MessageRecipient,
	domain.TraitSight:            Sight,
}

// ByName looks a trait up by its registered name.
func ByName(name string) (*domain.Trait, error) {
	tr, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrait, name)
	}
	return tr, nil
}

// Resolve maps a list of names to traits, keeping the order.
func Resolve(names []string) ([]*domain.Trait, error) {
	out := make([]*domain.Trait, 0, len(names))
	for _, name := range names {
		tr, err := ByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, nil
}

// Names lists every registered trait name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
