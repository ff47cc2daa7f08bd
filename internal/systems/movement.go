package systems

import (
	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TryMove - the Moveable behavior. Resolves a move of e to (x, y, z):
//  1. a level change needs matching stairs under e and a free landing cell;
//  2. an occupied cell is attacked if e is an Attacker, otherwise refused;
//  3. walkable terrain is entered, diggable terrain is dug out.
//
// False means nothing happened.
func TryMove(e *domain.Entity, x, y, z int) bool {
	w := e.World()
	if w == nil {
		return false
	}

	// Stairs are read on the level e is standing on.
	tile := w.Tile(x, y, e.Z())

	switch {
	case z < e.Z():
		if tile != domain.StairsUpTile {
			SendMessage(e, "You can't go up here!")
			return false
		}
		if !changeLevel(w, e, x, y, z) {
			return false
		}
		SendMessage(e, "You ascend to level %d!", z+1)
		return true

	case z > e.Z():
		if tile != domain.StairsDownTile {
			SendMessage(e, "You can't go down here!")
			return false
		}
		if !changeLevel(w, e, x, y, z) {
			return false
		}
		SendMessage(e, "You descend to level %d!", z+1)
		return true
	}

	if target := w.EntityAt(x, y, z); target != nil {
		if e.HasTrait(domain.TraitAttacker) {
			e.Attack(target)
			return true
		}
		return false
	}

	if tile.IsWalkable() {
		e.SetPosition(x, y, z)
		return true
	}
	if tile.IsDiggable() {
		w.Dig(x, y, z)
		return true
	}
	return false
}

// changeLevel checks the landing cell before moving so a blocked staircase
// is a refused move rather than an integrity violation.
func changeLevel(w *domain.World, e *domain.Entity, x, y, z int) bool {
	if !w.InBounds(x, y, z) {
		SendMessage(e, "The stairs lead nowhere!")
		return false
	}
	if w.EntityAt(x, y, z) != nil {
		SendMessage(e, "Something blocks the stairs!")
		return false
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"entity_id": e.ID,
		"from":      e.Z(),
		"to":        z,
	}).Debug("Level change.")

	e.SetPosition(x, y, z)
	return true
}
