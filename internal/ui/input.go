package ui

import (
	"github.com/gdamore/tcell/v2"
)

// CommandKind is what a key press asks for.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdWait
	CmdConfirm
	CmdCancel
	CmdQuit
)

// Command - a decoded key press. Dx, Dy and Dz are set for CmdMove.
type Command struct {
	Kind       CommandKind
	Dx, Dy, Dz int
}

func move(dx, dy, dz int) Command {
	return Command{Kind: CmdMove, Dx: dx, Dy: dy, Dz: dz}
}

// DecodeKey maps a key press to a command: arrows or WASD walk, '<' and
// '>' take stairs, '.' waits, Enter confirms, Escape cancels, Ctrl-C quits.
func DecodeKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return move(-1, 0, 0)
	case tcell.KeyRight:
		return move(1, 0, 0)
	case tcell.KeyUp:
		return move(0, -1, 0)
	case tcell.KeyDown:
		return move(0, 1, 0)
	case tcell.KeyEnter:
		return Command{Kind: CmdConfirm}
	case tcell.KeyEscape:
		return Command{Kind: CmdCancel}
	case tcell.KeyCtrlC:
		return Command{Kind: CmdQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return move(-1, 0, 0)
		case 'd', 'D':
			return move(1, 0, 0)
		case 'w', 'W':
			return move(0, -1, 0)
		case 's', 'S':
			return move(0, 1, 0)
		case '<':
			return move(0, 0, -1)
		case '>':
			return move(0, 0, 1)
		case '.':
			return Command{Kind: CmdWait}
		}
	}
	return Command{}
}
