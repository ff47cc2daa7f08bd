package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Surface is where screens draw. The game only pushes cells; it never reads
// them back.
type Surface interface {
	Draw(x, y int, char byte, fg, bg uint32)
	Size() (width, height int)
}

// TcellSurface draws onto a terminal screen.
type TcellSurface struct {
	Screen tcell.Screen
}

func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{Screen: screen}
}

func (t *TcellSurface) Draw(x, y int, char byte, fg, bg uint32) {
	t.Screen.SetContent(x, y, rune(char), nil, styleOf(fg, bg))
}

func (t *TcellSurface) Size() (int, int) {
	return t.Screen.Size()
}

func styleOf(fg, bg uint32) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(fg)).
		Background(rgb(bg))
}

func rgb(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xFF), int32(c>>8&0xFF), int32(c&0xFF))
}

// DrawText writes text left to right from (x, y), clipped at the right
// edge. Non-ASCII bytes are drawn as '?'.
func DrawText(s Surface, x, y int, text string, fg, bg uint32) {
	width, height := s.Size()
	if y < 0 || y >= height {
		return
	}
	for i := 0; i < len(text); i++ {
		cx := x + i
		if cx >= width {
			return
		}
		if cx < 0 {
			continue
		}
		ch := text[i]
		if ch >= 0x80 {
			ch = '?'
		}
		s.Draw(cx, y, ch, fg, bg)
	}
}
