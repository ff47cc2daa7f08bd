package dungeon

import (
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Generation defaults
const (
	MapWidth  = 80
	MapHeight = 40
	MapDepth  = 3
	MaxRooms  = 12
	MinSize   = 4
	MaxSize   = 10
)

// Params describes a dungeon to generate.
type Params struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Depth    int `yaml:"depth"`
	MaxRooms int `yaml:"maxRooms"`
	MinRoom  int `yaml:"minRoom"`
	MaxRoom  int `yaml:"maxRoom"`
}

// DefaultParams returns the generation defaults.
func DefaultParams() Params {
	return Params{
		Width:    MapWidth,
		Height:   MapHeight,
		Depth:    MapDepth,
		MaxRooms: MaxRooms,
		MinRoom:  MinSize,
		MaxRoom:  MaxSize,
	}
}

// Generate builds every level and links each pair of neighbors with one
// staircase: stairs down on level z and stairs up at the same (x, y) on
// level z+1.
func Generate(p Params, rng *rand.Rand) domain.TileGrid {
	grid := make(domain.TileGrid, p.Depth)
	builders := make([]*LevelBuilder, p.Depth)

	// 1. Rooms and corridors per level
	for z := 0; z < p.Depth; z++ {
		builders[z] = NewLevel(z, rng).
			WithSize(p.Width, p.Height).
			WithRoomSize(p.MinRoom, p.MaxRoom).
			WithRooms(p.MaxRooms)
		grid[z] = builders[z].Build()
	}

	// 2. Stairs between neighbors
	for z := 0; z+1 < p.Depth; z++ {
		x, y := stairsSpot(builders[z], builders[z+1], rng)

		// The landing must be reachable from the lower level's rooms.
		lower := plane(grid[z+1])
		if lower[x][y] != domain.FloorTile {
			room := nearestRoom(builders[z+1].Rooms(), x, y)
			cx, cy := room.Center()
			connect(lower, rng, x, y, cx, cy)
		}

		grid[z][x][y] = domain.StairsDownTile
		grid[z+1][x][y] = domain.StairsUpTile
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"width":     p.Width,
		"height":    p.Height,
		"depth":     p.Depth,
	}).Info("Dungeon generated.")

	return grid
}

// stairsSpot prefers a floor cell shared by both levels and falls back to a
// random floor cell in one of the upper level's rooms.
func stairsSpot(upper, lower *LevelBuilder, rng *rand.Rand) (int, int) {
	var shared [][2]int
	for x := range upper.tiles {
		for y := range upper.tiles[x] {
			if upper.tiles[x][y] == domain.FloorTile && lower.tiles[x][y] == domain.FloorTile {
				shared = append(shared, [2]int{x, y})
			}
		}
	}
	if len(shared) > 0 {
		c := shared[rng.Intn(len(shared))]
		return c[0], c[1]
	}

	rooms := upper.Rooms()
	for attempt := 0; attempt < 100; attempt++ {
		room := rooms[rng.Intn(len(rooms))]
		x := room.X + 1 + rng.Intn(room.W-1)
		y := room.Y + 1 + rng.Intn(room.H-1)
		if upper.tiles[x][y] == domain.FloorTile {
			return x, y
		}
	}
	return rooms[0].Center()
}

func nearestRoom(rooms []Rect, x, y int) Rect {
	best := rooms[0]
	bestDist := -1
	for _, r := range rooms {
		cx, cy := r.Center()
		d := abs(cx-x) + abs(cy-y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
