package ui

import (
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// App drives the screens from terminal events. The screen must already be
// initialized; the caller finalizes it after Run returns.
type App struct {
	screen  tcell.Screen
	surface *TcellSurface
	current Screen
}

func NewApp(screen tcell.Screen, newGame NewGameFunc) *App {
	a := &App{
		screen:  screen,
		surface: NewTcellSurface(screen),
	}
	a.switchTo(NewStartScreen(newGame))
	return a
}

// Current returns the active screen.
func (a *App) Current() Screen { return a.current }

func (a *App) switchTo(next Screen) {
	if a.current != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "ui",
			"screen":    a.current.Name(),
		}).Debug("Exited screen.")
	}
	a.current = next
	logger.Log.WithFields(logrus.Fields{
		"component": "ui",
		"screen":    next.Name(),
	}).Debug("Entered screen.")
}

func (a *App) render() {
	a.screen.Clear()
	a.current.Render(a.surface)
	a.screen.Show()
}

// Run renders and handles key presses until a screen asks to quit.
func (a *App) Run() {
	for {
		a.render()

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			// Screen finalized elsewhere.
			return
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			cmd := DecodeKey(ev)
			if cmd.Kind == CmdNone {
				continue
			}
			next := a.current.HandleInput(cmd)
			if next == nil {
				logger.Log.WithField("component", "ui").Info("Quit requested.")
				return
			}
			if next != a.current {
				a.switchTo(next)
			}
		}
	}
}
