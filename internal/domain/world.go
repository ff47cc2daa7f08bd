package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Goluxas/roguelike-tutorial/pkg/fov"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Integrity violations. The world panics with an error wrapping one of
// these: they are caller bugs, not expected outcomes.
var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrNoFreeCell   = errors.New("no empty floor cell on level")
)

// Scheduler is the part of the turn engine the world and traits talk to.
type Scheduler interface {
	Add(e *Entity)
	Remove(e *Entity)
	Lock()
	Unlock()
}

// cellKey packs an in-bounds (x, y, z) into one map key.
type cellKey uint64

const coordBits = 21

func keyOf(x, y, z int) cellKey {
	return cellKey(uint64(z)<<(2*coordBits) | uint64(x)<<coordBits | uint64(y))
}

// World - the multi-level dungeon: terrain, the exclusive position index,
// per-level field of view and explored memory.
type World struct {
	width, height, depth int

	// Terrain is an arena of distinct tiles plus one arena index per cell,
	// laid out as (z*width + x)*height + y.
	arena     []*Tile
	arenaIdx  map[*Tile]uint8
	cells     []uint8
	floorSlot uint8

	entities map[cellKey]*Entity
	fov      []*fov.Calculator
	explored []bool

	scheduler Scheduler
	rng       *rand.Rand
	player    *Entity
}

// NewWorld builds the world from a generated grid and places the player at a
// random empty floor cell of level 0. Nil cells read as NullTile. The grid
// must be rectangular and use at most 256 distinct tiles.
func NewWorld(tiles TileGrid, player *Entity, scheduler Scheduler, rng *rand.Rand) *World {
	width, height, depth := tiles.Dimensions()

	w := &World{
		width:     width,
		height:    height,
		depth:     depth,
		arenaIdx:  make(map[*Tile]uint8),
		cells:     make([]uint8, width*height*depth),
		entities:  make(map[cellKey]*Entity),
		fov:       make([]*fov.Calculator, depth),
		explored:  make([]bool, width*height*depth),
		scheduler: scheduler,
		rng:       rng,
	}

	// Slot 0 is always the null tile so zeroed cells default to it.
	w.intern(NullTile)
	w.floorSlot = w.intern(FloorTile)

	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				t := tiles[z][x][y]
				if t == nil {
					t = NullTile
				}
				w.cells[w.index(x, y, z)] = w.intern(t)
			}
		}
		w.fov[z] = fov.New(width, height, w.lightBlocker(z))
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"width":     width,
		"height":    height,
		"depth":     depth,
		"tiles":     len(w.arena),
	}).Debug("World created.")

	if player != nil {
		w.player = player
		w.AddEntityAtRandomPosition(player, 0)
	}
	return w
}

func (w *World) intern(t *Tile) uint8 {
	if slot, ok := w.arenaIdx[t]; ok {
		return slot
	}
	if len(w.arena) > 255 {
		panic(fmt.Errorf("world: more than 256 distinct tiles"))
	}
	slot := uint8(len(w.arena))
	w.arena = append(w.arena, t)
	w.arenaIdx[t] = slot
	return slot
}

func (w *World) lightBlocker(z int) fov.LightBlocker {
	return func(x, y int) bool {
		return w.Tile(x, y, z).IsBlockingLight()
	}
}

func (w *World) index(x, y, z int) int {
	return (z*w.width+x)*w.height + y
}

func (w *World) Width() int { return w.width }
func (w *World) Height() int { return w.height }
func (w *World) Depth() int { return w.depth }
func (w *World) Player() *Entity { return w.player }
func (w *World) Scheduler() Scheduler { return w.scheduler }
func (w *World) Rand() *rand.Rand { return w.rng }

// InBounds reports whether every coordinate is inside the grid.
func (w *World) InBounds(x, y, z int) bool {
	return x >= 0 && x < w.width &&
		y >= 0 && y < w.height &&
		z >= 0 && z < w.depth
}

// Tile returns the terrain at (x, y, z); NullTile when out of bounds.
func (w *World) Tile(x, y, z int) *Tile {
	if !w.InBounds(x, y, z) {
		return NullTile
	}
	return w.arena[w.cells[w.index(x, y, z)]]
}

// Dig turns a diggable cell into floor. Anything else is left alone.
func (w *World) Dig(x, y, z int) {
	if w.Tile(x, y, z).IsDiggable() {
		w.cells[w.index(x, y, z)] = w.floorSlot
	}
}

// IsEmptyFloor is true for a floor cell nobody stands on.
func (w *World) IsEmptyFloor(x, y, z int) bool {
	return w.Tile(x, y, z) == FloorTile && w.EntityAt(x, y, z) == nil
}

// RandomFloorPosition picks a random empty floor cell of level z.
func (w *World) RandomFloorPosition(z int) (x, y int, ok bool) {
	if z < 0 || z >= w.depth || w.width == 0 || w.height == 0 {
		return 0, 0, false
	}

	// Random probing first, a full scan as the fallback for crowded levels.
	attempts := w.width * w.height
	for i := 0; i < attempts; i++ {
		x, y = w.rng.Intn(w.width), w.rng.Intn(w.height)
		if w.IsEmptyFloor(x, y, z) {
			return x, y, true
		}
	}
	for x = 0; x < w.width; x++ {
		for y = 0; y < w.height; y++ {
			if w.IsEmptyFloor(x, y, z) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// AddEntity places e at its current coordinates.
func (w *World) AddEntity(e *Entity) {
	if !w.InBounds(e.x, e.y, e.z) {
		w.fatal(e, fmt.Errorf("%w: add %s at (%d,%d,%d)", ErrOutOfBounds, e.name, e.x, e.y, e.z))
	}
	if other := w.entities[keyOf(e.x, e.y, e.z)]; other != nil && other != e {
		w.fatal(e, fmt.Errorf("%w: add %s at (%d,%d,%d) held by %s", ErrCellOccupied, e.name, e.x, e.y, e.z, other.name))
	}

	e.world = w
	w.entities[keyOf(e.x, e.y, e.z)] = e

	if e.HasTrait(GroupActor) && w.scheduler != nil {
		w.scheduler.Add(e)
	}
}

// AddEntityAtRandomPosition places e on a random empty floor cell of level z.
func (w *World) AddEntityAtRandomPosition(e *Entity, z int) {
	x, y, ok := w.RandomFloorPosition(z)
	if !ok {
		w.fatal(e, fmt.Errorf("%w: level %d", ErrNoFreeCell, z))
	}
	e.x, e.y, e.z = x, y, z
	w.AddEntity(e)
}

// RemoveEntity takes e off the map and out of the turn order. The index
// entry is only deleted if it still points at e.
func (w *World) RemoveEntity(e *Entity) {
	key := keyOf(e.x, e.y, e.z)
	if w.InBounds(e.x, e.y, e.z) && w.entities[key] == e {
		delete(w.entities, key)
	}
	if e.HasTrait(GroupActor) && w.scheduler != nil {
		w.scheduler.Remove(e)
	}
	if e.world == w {
		e.world = nil
	}
}

// UpdateEntityPosition re-indexes e after its coordinates changed from
// (oldX, oldY, oldZ). It is the only way entities move. The update is all or
// nothing: on an invalid target e gets its old coordinates back and the
// world panics.
func (w *World) UpdateEntityPosition(e *Entity, oldX, oldY, oldZ int) {
	if !w.InBounds(e.x, e.y, e.z) {
		newX, newY, newZ := e.x, e.y, e.z
		e.x, e.y, e.z = oldX, oldY, oldZ
		w.fatal(e, fmt.Errorf("%w: move %s to (%d,%d,%d)", ErrOutOfBounds, e.name, newX, newY, newZ))
	}

	newKey := keyOf(e.x, e.y, e.z)
	if other := w.entities[newKey]; other != nil && other != e {
		newX, newY, newZ := e.x, e.y, e.z
		e.x, e.y, e.z = oldX, oldY, oldZ
		w.fatal(e, fmt.Errorf("%w: move %s to (%d,%d,%d) held by %s", ErrCellOccupied, e.name, newX, newY, newZ, other.name))
	}

	if w.InBounds(oldX, oldY, oldZ) {
		oldKey := keyOf(oldX, oldY, oldZ)
		if w.entities[oldKey] == e {
			delete(w.entities, oldKey)
		}
	}
	w.entities[newKey] = e
}

// fatal logs an integrity violation and panics with it.
func (w *World) fatal(e *Entity, err error) {
	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"entity_id": e.ID,
	}).WithError(err).Error("World integrity violation.")
	panic(err)
}

// EntityAt returns whoever stands on (x, y, z), or nil.
func (w *World) EntityAt(x, y, z int) *Entity {
	if !w.InBounds(x, y, z) {
		return nil
	}
	return w.entities[keyOf(x, y, z)]
}

// EntitiesWithinRadius returns every entity inside the square window
// [cx-r, cx+r] × [cy-r, cy+r]. Level is not filtered: cz is accepted for
// symmetry only.
func (w *World) EntitiesWithinRadius(cx, cy, cz, radius int) []*Entity {
	var out []*Entity
	for _, e := range w.Entities() {
		if e.x >= cx-radius && e.x <= cx+radius &&
			e.y >= cy-radius && e.y <= cy+radius {
			out = append(out, e)
		}
	}
	return out
}

// Entities lists every placed entity ordered by level, row, column.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.z != b.z {
			return a.z < b.z
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	return out
}

// EntityCount returns the number of placed entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// FOV returns the visibility calculator of level z, nil when out of range.
func (w *World) FOV(z int) *fov.Calculator {
	if z < 0 || z >= w.depth {
		return nil
	}
	return w.fov[z]
}

// SetExplored records whether a cell has ever been seen. Writes to
// out-of-bounds or null-tile cells are ignored.
func (w *World) SetExplored(x, y, z int, state bool) {
	if w.Tile(x, y, z) == NullTile {
		return
	}
	w.explored[w.index(x, y, z)] = state
}

// IsExplored reports whether the cell has been seen.
func (w *World) IsExplored(x, y, z int) bool {
	if !w.InBounds(x, y, z) {
		return false
	}
	return w.explored[w.index(x, y, z)]
}
