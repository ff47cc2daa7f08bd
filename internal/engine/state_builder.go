package engine

import (
	"strings"
	"time"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
	"github.com/google/uuid"
)

// BuildState creates the player's snapshot of the world: field of view
// (which also updates explored memory), remembered tiles, visible entities
// and the messages received since the previous snapshot.
func (g *Game) BuildState() *api.ServerResponse {
	w := g.world
	z := g.player.Z()

	// 1. Field of view
	visible := g.Visibility()

	// 2. Map DTO: every visible or remembered tile
	var mapDTO []api.TileView
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			isVisible := visible[y*w.Width()+x]
			if !isVisible && !w.IsExplored(x, y, z) {
				continue
			}
			tile := w.Tile(x, y, z)
			glyph := tile.Glyph()
			mapDTO = append(mapDTO, api.TileView{
				X:          x,
				Y:          y,
				Symbol:     string(glyph.Char()),
				Color:      glyph.HexForeground(),
				Background: glyph.HexBackground(),
				IsWalkable: tile.IsWalkable(),
				IsVisible:  isVisible,
				IsExplored: true,
			})
		}
	}

	// 3. Entities DTO: the player always, others only when visible
	var viewEntities []api.EntityView
	for _, e := range w.Entities() {
		if e.Z() != z {
			continue
		}
		if e != g.player && !visible[e.Y()*w.Width()+e.X()] {
			continue
		}
		viewEntities = append(viewEntities, toEntityView(e))
	}

	// 4. Messages
	now := time.Now().UnixMilli()
	var logs []api.LogEntry
	for _, text := range g.DrainMessages() {
		logs = append(logs, api.LogEntry{
			ID:        uuid.NewString(),
			Text:      text,
			Type:      logType(text),
			Timestamp: now,
		})
	}

	return &api.ServerResponse{
		Type:       api.TypeUpdate,
		Tick:       g.scheduler.Turns(),
		MyEntityID: g.player.ID.String(),
		Level:      z,
		Grid:       &api.GridMeta{Width: w.Width(), Height: w.Height(), Depth: w.Depth()},
		Map:        mapDTO,
		Entities:   viewEntities,
		Logs:       logs,
		GameOver:   g.IsOver(),
	}
}

// toEntityView converts a domain entity into its DTO.
func toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:     e.ID.String(),
		Type:   e.ID.Kind().String(),
		Name:   e.Name(),
		Traits: e.Traits(),
	}
	view.Pos.X, view.Pos.Y, view.Pos.Z = e.Position()

	glyph := e.Glyph()
	view.Render.Symbol = string(glyph.Char())
	view.Render.Color = glyph.HexForeground()

	if e.Health != nil {
		view.Stats = &api.StatsView{
			HP:      e.Health.HP,
			MaxHP:   e.Health.MaxHP,
			Defense: e.Health.Defense,
			IsDead:  e.Health.HP <= 0,
		}
		if e.Combat != nil {
			view.Stats.Attack = e.Combat.Attack
		}
	}

	return view
}

func logType(text string) string {
	if strings.Contains(text, "strike") || strings.Contains(text, "kill") || strings.Contains(text, "died") {
		return "COMBAT"
	}
	return "INFO"
}
