package systems

import (
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RollDamage returns 1 plus a uniform roll below max(0, power-defense), so
// the result always lies in [1, max(1, power-defense)].
func RollDamage(rng *rand.Rand, power, defense int) int {
	spread := power - defense
	if spread <= 0 {
		return 1
	}
	return 1 + rng.Intn(spread)
}

// Attack - the Attacker behavior. Targets without the Destructible trait
// are ignored.
func Attack(attacker, target *domain.Entity) {
	if target == nil || !target.HasTrait(domain.TraitDestructible) || target.Health == nil {
		return
	}

	power := 0
	if attacker.Combat != nil {
		power = attacker.Combat.Attack
	}
	damage := RollDamage(rngOf(attacker), power, target.Health.Defense)

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker.ID,
		"target_id":   target.ID,
		"power":       power,
		"defense":     target.Health.Defense,
		"damage":      damage,
		"hp_before":   target.Health.HP,
	}).Debug("Attack resolved.")

	SendMessage(attacker, "You strike the %s for %d damage!", target.Name(), damage)
	SendMessage(target, "The %s strikes you for %d damage!", attacker.Name(), damage)

	target.TakeDamage(attacker, damage)
}

// TakeDamage - the Destructible behavior. At zero HP the player gets its own
// turn to end the game; anything else is removed from the world.
func TakeDamage(victim, attacker *domain.Entity, damage int) {
	if victim.Health == nil {
		return
	}
	if !victim.Health.Damage(damage) {
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"victim_id": victim.ID,
		"hp":        victim.Health.HP,
	}).Info("Entity killed.")

	SendMessage(attacker, "You kill the %s!", victim.Name())

	if victim.HasTrait(domain.TraitPlayerActor) {
		victim.Act()
		return
	}
	if w := victim.World(); w != nil {
		w.RemoveEntity(victim)
	}
}

// rngOf returns the generator of the world the entity lives on, or a
// package-level one for detached entities.
func rngOf(e *domain.Entity) *rand.Rand {
	if w := e.World(); w != nil && w.Rand() != nil {
		return w.Rand()
	}
	return fallbackRand
}

var fallbackRand = rand.New(rand.NewSource(1))
