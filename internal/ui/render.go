package ui

import (
	"fmt"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types"
	"github.com/Goluxas/roguelike-tutorial/internal/engine"
)

// Viewport returns the map cell drawn at screen (0, 0) so that the center
// stays in view without showing anything past the map edges.
func Viewport(centerX, centerY, mapWidth, mapHeight, screenWidth, screenHeight int) (left, top int) {
	left = clamp(centerX-screenWidth/2, 0, mapWidth-screenWidth)
	top = clamp(centerY-screenHeight/2, 0, mapHeight-screenHeight)
	return left, top
}

// clamp keeps v in [lo, hi]; lo wins when hi < lo.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RenderPlay draws the player's level: visible cells (and the creatures on
// them) in full color, explored cells dimmed, messages over the top rows
// and the status line at the bottom.
func RenderPlay(s Surface, g *engine.Game, messages []string) {
	screenWidth, screenHeight := s.Size()
	mapRows := screenHeight - 1
	if screenWidth <= 0 || mapRows <= 0 {
		return
	}

	w := g.World()
	player := g.Player()
	z := player.Z()
	visible := g.Visibility()

	left, top := Viewport(player.X(), player.Y(), w.Width(), w.Height(), screenWidth, mapRows)

	for sy := 0; sy < mapRows; sy++ {
		for sx := 0; sx < screenWidth; sx++ {
			x, y := left+sx, top+sy
			if !w.InBounds(x, y, z) {
				s.Draw(sx, sy, ' ', types.ColorBlack, types.ColorBlack)
				continue
			}

			glyph := w.Tile(x, y, z).Glyph()
			switch {
			case visible[y*w.Width()+x]:
				if e := w.EntityAt(x, y, z); e != nil {
					eg := e.Glyph()
					s.Draw(sx, sy, eg.Char(), eg.Foreground(), glyph.Background())
					continue
				}
				s.Draw(sx, sy, glyph.Char(), glyph.Foreground(), glyph.Background())
			case w.IsExplored(x, y, z):
				s.Draw(sx, sy, glyph.Char(), types.ColorDarkGray, glyph.Background())
			default:
				s.Draw(sx, sy, ' ', types.ColorBlack, types.ColorBlack)
			}
		}
	}

	for i, msg := range messages {
		if i >= mapRows {
			break
		}
		DrawText(s, 0, i, msg, types.ColorWhite, types.ColorBlack)
	}

	status := fmt.Sprintf("Level %d", z+1)
	if player.Health != nil {
		status = fmt.Sprintf("HP: %d/%d  %s", player.Health.HP, player.Health.MaxHP, status)
	}
	DrawText(s, 0, screenHeight-1, padRight(status, screenWidth), types.ColorWhite, types.ColorBlack)
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
