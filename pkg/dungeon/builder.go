package dungeon

import (
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
)

// Rect - helper for a room
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains reports whether (x, y) is on the room's floor.
func (r Rect) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// plane is one level of terrain, indexed [x][y].
type plane [][]*domain.Tile

func newPlane(width, height int, fill *domain.Tile) plane {
	p := make(plane, width)
	for x := range p {
		col := make([]*domain.Tile, height)
		for y := range col {
			col[y] = fill
		}
		p[x] = col
	}
	return p
}

func (p plane) carve(x, y int) {
	if x < 0 || x >= len(p) || y < 0 || y >= len(p[x]) {
		return
	}
	p[x][y] = domain.FloorTile
}

func createRoom(p plane, room Rect) {
	for x := room.X + 1; x < room.X+room.W; x++ {
		for y := room.Y + 1; y < room.Y+room.H; y++ {
			p.carve(x, y)
		}
	}
}

func createHCorridor(p plane, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		p.carve(x, y)
	}
}

func createVCorridor(p plane, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		p.carve(x, y)
	}
}

// connect digs an L-shaped corridor between two points, bending at random.
func connect(p plane, rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		createHCorridor(p, x1, x2, y1)
		createVCorridor(p, y1, y2, x2)
	} else {
		createVCorridor(p, y1, y2, x1)
		createHCorridor(p, x1, x2, y2)
	}
}

// LevelBuilder - fluent API for one level of rooms and corridors.
type LevelBuilder struct {
	level  int
	width  int
	height int
	rooms  []Rect
	tiles  plane
	rng    *rand.Rand

	minSize, maxSize int
}

// NewLevel creates a builder for level z.
func NewLevel(level int, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		level:   level,
		width:   MapWidth,
		height:  MapHeight,
		rng:     rng,
		minSize: MinSize,
		maxSize: MaxSize,
	}
}

// WithSize sets the map size.
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRoomSize bounds room width and height.
func (b *LevelBuilder) WithRoomSize(minSize, maxSize int) *LevelBuilder {
	b.minSize = minSize
	b.maxSize = maxSize
	return b
}

func (b *LevelBuilder) randRange(lo, hi int) int {
	return b.rng.Intn(hi-lo+1) + lo
}

// WithRooms fills the level with walls and carves up to maxRooms rooms, each
// joined to the previous one.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.tiles = newPlane(b.width, b.height, domain.WallTile)
	b.rooms = make([]Rect, 0, maxRooms)

	maxSize := min(b.maxSize, b.width-3, b.height-3)
	minSize := min(b.minSize, maxSize)
	if maxSize < 3 {
		return b
	}

	for i := 0; i < maxRooms; i++ {
		w := b.randRange(minSize, maxSize)
		h := b.randRange(minSize, maxSize)
		x := b.randRange(1, b.width-w-2)
		y := b.randRange(1, b.height-h-2)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(b.tiles, newRoom)
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()
			connect(b.tiles, b.rng, prevX, prevY, currX, currY)
		}
		b.rooms = append(b.rooms, newRoom)
	}

	// A level always has somewhere to stand.
	if len(b.rooms) == 0 {
		room := Rect{X: 1, Y: 1, W: maxSize, H: maxSize}
		createRoom(b.tiles, room)
		b.rooms = append(b.rooms, room)
	}

	return b
}

// Rooms returns the carved rooms in creation order.
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// StartPos is the center of the first room.
func (b *LevelBuilder) StartPos() (int, int) {
	if len(b.rooms) > 0 {
		return b.rooms[0].Center()
	}
	return b.width / 2, b.height / 2
}

// Build returns the level's terrain.
func (b *LevelBuilder) Build() [][]*domain.Tile {
	if b.tiles == nil {
		b.WithRooms(MaxRooms)
	}
	return b.tiles
}
