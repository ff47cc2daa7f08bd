package systems

import (
	"reflect"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
)

func TestTryMove_Terrain(t *testing.T) {
	w, _ := floorWorld(8, 8, 1, 1)
	walker := place(w, domain.Template{Name: "walker", Traits: []*domain.Trait{moveable}}, 1, 1, 0)

	// Floor: moves.
	if !walker.TryMove(2, 1, 0) {
		t.Fatal("move onto floor refused")
	}
	if walker.X() != 2 || w.EntityAt(2, 1, 0) != walker || w.EntityAt(1, 1, 0) != nil {
		t.Error("walker not re-indexed")
	}

	// Wall: dug, walker stays.
	if !walker.TryMove(2, 0, 0) {
		t.Fatal("move into a wall should dig")
	}
	if w.Tile(2, 0, 0) != domain.FloorTile {
		t.Error("wall not dug")
	}
	if walker.Y() != 1 {
		t.Error("digging must not move the digger")
	}

	// Off the map: null tile, refused.
	walker.SetPosition(2, 0, 0)
	if walker.TryMove(2, -1, 0) {
		t.Error("move off the map should be refused")
	}
	if x, y, z := walker.Position(); x != 2 || y != 0 || z != 0 {
		t.Errorf("refused move changed position to (%d,%d,%d)", x, y, z)
	}
}

func TestTryMove_OccupiedCell(t *testing.T) {
	w, _ := floorWorld(8, 8, 1, 1)

	pacifist := place(w, domain.Template{Name: "pacifist", Traits: []*domain.Trait{moveable}}, 2, 2, 0)
	fighter := place(w, domain.Template{
		Name:   "fighter",
		Props:  map[string]int{domain.PropAttackValue: 1},
		Traits: []*domain.Trait{moveable, attacker},
	}, 4, 2, 0)
	dummy := place(w, domain.Template{
		Name:   "dummy",
		Props:  map[string]int{domain.PropMaxHP: 10},
		Traits: []*domain.Trait{destructible},
	}, 3, 2, 0)

	if pacifist.TryMove(3, 2, 0) {
		t.Error("non-attacker should be refused by an occupied cell")
	}
	if !fighter.TryMove(3, 2, 0) {
		t.Error("attacker bumping into someone attacks")
	}
	if dummy.Health.HP != 9 {
		t.Errorf("dummy HP = %d, want 9", dummy.Health.HP)
	}
	if fighter.X() != 4 || pacifist.X() != 2 {
		t.Error("bumping never moves the mover")
	}
}

func TestTryMove_Stairs(t *testing.T) {
	w, _ := floorWorld(8, 8, 2, 1)
	// Matching stairs pair at (3,3).
	grid := domain.NewTileGrid(8, 8, 2, domain.FloorTile)
	grid[0][3][3] = domain.StairsDownTile
	grid[1][3][3] = domain.StairsUpTile
	w = domain.NewWorld(grid, nil, nil, w.Rand())

	hero := place(w, domain.Template{Name: "hero", Traits: []*domain.Trait{moveable, recipient}}, 2, 3, 0)

	// Not on stairs.
	if hero.TryMove(2, 3, 1) {
		t.Error("descending without stairs should fail")
	}
	if hero.TryMove(2, 3, -1) {
		t.Error("ascending without stairs should fail")
	}

	hero.TryMove(3, 3, 0)
	if !hero.TryMove(3, 3, 1) {
		t.Fatal("descending from stairs down refused")
	}
	if hero.Z() != 1 || w.EntityAt(3, 3, 1) != hero || w.EntityAt(3, 3, 0) != nil {
		t.Error("hero not moved to level 1")
	}

	// Stairs up on level 1 lead back.
	if !hero.TryMove(3, 3, 0) {
		t.Fatal("ascending from stairs up refused")
	}

	want := []string{
		"You can't go down here!",
		"You can't go up here!",
		"You descend to level 2!",
		"You ascend to level 1!",
	}
	if got := hero.DrainMessages(); !reflect.DeepEqual(got, want) {
		t.Errorf("messages = %v, want %v", got, want)
	}
}

func TestTryMove_BlockedStairs(t *testing.T) {
	grid := domain.NewTileGrid(6, 6, 2, domain.FloorTile)
	grid[0][3][3] = domain.StairsDownTile
	w, _ := floorWorld(6, 6, 2, 1)
	w = domain.NewWorld(grid, nil, nil, w.Rand())

	hero := place(w, domain.Template{Name: "hero", Traits: []*domain.Trait{moveable, recipient}}, 3, 3, 0)
	place(w, domain.Template{Name: "squatter"}, 3, 3, 1)

	if hero.TryMove(3, 3, 1) {
		t.Error("landing on an occupied cell should be refused")
	}
	if hero.Z() != 0 {
		t.Error("hero should stay on level 0")
	}
	if got := hero.DrainMessages(); len(got) != 1 || got[0] != "Something blocks the stairs!" {
		t.Errorf("messages = %v", got)
	}

	// Last level: stairs down lead out of the grid.
	grid2 := domain.NewTileGrid(6, 6, 1, domain.StairsDownTile)
	w2 := domain.NewWorld(grid2, nil, nil, w.Rand())
	lone := place(w2, domain.Template{Name: "lone", Traits: []*domain.Trait{moveable}}, 1, 1, 0)
	if lone.TryMove(1, 1, 1) {
		t.Error("stairs past the last level should be refused")
	}
}

func TestTryMove_Detached(t *testing.T) {
	e := domain.NewEntity(domain.Template{Name: "floating", Traits: []*domain.Trait{moveable}})
	if e.TryMove(1, 1, 0) {
		t.Error("an entity outside any world cannot move")
	}
}
