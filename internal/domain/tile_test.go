package domain

import (
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types"
)

func TestCanonicalTiles(t *testing.T) {
	tests := []struct {
		name                              string
		tile                              *Tile
		char                              byte
		walkable, diggable, blockingLight bool
	}{
		{"null", NullTile, ' ', false, false, true},
		{"floor", FloorTile, '.', true, false, false},
		{"wall", WallTile, '#', false, true, true},
		{"stairs up", StairsUpTile, '<', true, false, false},
		{"stairs down", StairsDownTile, '>', true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tile.Glyph().Char(); got != tt.char {
				t.Errorf("char = %q, want %q", got, tt.char)
			}
			if tt.tile.IsWalkable() != tt.walkable {
				t.Errorf("walkable = %v", tt.tile.IsWalkable())
			}
			if tt.tile.IsDiggable() != tt.diggable {
				t.Errorf("diggable = %v", tt.tile.IsDiggable())
			}
			if tt.tile.IsBlockingLight() != tt.blockingLight {
				t.Errorf("blockingLight = %v", tt.tile.IsBlockingLight())
			}
		})
	}

	if WallTile.Glyph().Foreground() != types.ColorGoldenrod {
		t.Error("walls are goldenrod")
	}
}

func TestTileGrid(t *testing.T) {
	grid := NewTileGrid(4, 3, 2, FloorTile)

	w, h, d := grid.Dimensions()
	if w != 4 || h != 3 || d != 2 {
		t.Fatalf("Dimensions() = %d,%d,%d, want 4,3,2", w, h, d)
	}
	if grid[1][3][2] != FloorTile {
		t.Error("grid not filled")
	}

	// Columns are independent slices.
	grid[0][0][0] = WallTile
	if grid[1][0][0] != FloorTile || grid[0][1][0] != FloorTile {
		t.Error("writing one cell leaked into another")
	}

	if w, h, d := (TileGrid{}).Dimensions(); w|h|d != 0 {
		t.Error("empty grid should have zero dimensions")
	}
}
