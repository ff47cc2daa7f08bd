package domain

import "github.com/Goluxas/roguelike-tutorial/internal/core/types"

// Tile - terrain of one map cell. Tiles are stateless after creation and
// shared by reference: a cell changes terrain by pointing at another tile,
// never by mutating the one it has.
type Tile struct {
	glyph         types.Glyph
	walkable      bool
	diggable      bool
	blockingLight bool
}

// TileSpec describes a tile to create.
type TileSpec struct {
	Glyph         types.Glyph
	Walkable      bool
	Diggable      bool
	BlockingLight bool
}

// NewTile creates a tile. Only the catalog below and tests should need it.
func NewTile(spec TileSpec) *Tile {
	return &Tile{
		glyph:         spec.Glyph,
		walkable:      spec.Walkable,
		diggable:      spec.Diggable,
		blockingLight: spec.BlockingLight,
	}
}

func (t *Tile) Glyph() types.Glyph { return t.glyph }
func (t *Tile) IsWalkable() bool { return t.walkable }
func (t *Tile) IsDiggable() bool { return t.diggable }
func (t *Tile) IsBlockingLight() bool { return t.blockingLight }

// Canonical tiles. Every grid cell references one of these.
var (
	NullTile = NewTile(TileSpec{
		Glyph:         types.MakeGlyph(types.DefaultChar, types.DefaultForeground, types.DefaultBackground),
		BlockingLight: true,
	})
	FloorTile = NewTile(TileSpec{
		Glyph:    types.MakeGlyph('.', types.ColorWhite, types.ColorBlack),
		Walkable: true,
	})
	WallTile = NewTile(TileSpec{
		Glyph:         types.MakeGlyph('#', types.ColorGoldenrod, types.ColorBlack),
		Diggable:      true,
		BlockingLight: true,
	})
	StairsUpTile = NewTile(TileSpec{
		Glyph:    types.MakeGlyph('<', types.ColorWhite, types.ColorBlack),
		Walkable: true,
	})
	StairsDownTile = NewTile(TileSpec{
		Glyph:    types.MakeGlyph('>', types.ColorWhite, types.ColorBlack),
		Walkable: true,
	})
)

// TileGrid is what a level generator hands to NewWorld: tiles[z][x][y],
// depth × width × height. Nil cells are read as NullTile.
type TileGrid [][][]*Tile

// NewTileGrid allocates a grid filled with fill.
func NewTileGrid(width, height, depth int, fill *Tile) TileGrid {
	grid := make(TileGrid, depth)
	for z := range grid {
		grid[z] = make([][]*Tile, width)
		for x := range grid[z] {
			col := make([]*Tile, height)
			for y := range col {
				col[y] = fill
			}
			grid[z][x] = col
		}
	}
	return grid
}

// Dimensions returns width, height and depth of a rectangular grid.
func (g TileGrid) Dimensions() (width, height, depth int) {
	depth = len(g)
	if depth == 0 {
		return 0, 0, 0
	}
	width = len(g[0])
	if width == 0 {
		return 0, 0, depth
	}
	return width, len(g[0][0]), depth
}
