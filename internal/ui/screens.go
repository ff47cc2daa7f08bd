package ui

import (
	"github.com/Goluxas/roguelike-tutorial/internal/core/types"
	"github.com/Goluxas/roguelike-tutorial/internal/engine"
)

// Screen is one top-level mode of the terminal client.
type Screen interface {
	Name() string
	Render(s Surface)
	// HandleInput returns the screen to show next: itself to stay, another
	// screen to switch, nil to quit.
	HandleInput(cmd Command) Screen
}

// NewGameFunc builds the game a play screen runs.
type NewGameFunc func() (*engine.Game, error)

// StartScreen waits for Enter and starts a game.
type StartScreen struct {
	NewGame NewGameFunc
	err     error
}

func NewStartScreen(newGame NewGameFunc) *StartScreen {
	return &StartScreen{NewGame: newGame}
}

func (s *StartScreen) Name() string { return "start" }

func (s *StartScreen) Render(surface Surface) {
	DrawText(surface, 1, 1, "Go Roguelike", types.ColorYellow, types.ColorBlack)
	DrawText(surface, 1, 2, "Press [Enter] to start!", types.ColorWhite, types.ColorBlack)
	if s.err != nil {
		DrawText(surface, 1, 4, "Cannot start: "+s.err.Error(), types.ColorRed, types.ColorBlack)
	}
}

func (s *StartScreen) HandleInput(cmd Command) Screen {
	switch cmd.Kind {
	case CmdQuit:
		return nil
	case CmdConfirm:
		g, err := s.NewGame()
		if err != nil {
			s.err = err
			return s
		}
		return &PlayScreen{Game: g, newGame: s.NewGame}
	}
	return s
}

// PlayScreen runs a game. Enter wins and Escape loses, as shortcuts; once
// the player is dead Enter leads to the lose screen.
type PlayScreen struct {
	Game     *engine.Game
	Messages []string

	newGame NewGameFunc
}

func (p *PlayScreen) Name() string { return "play" }

func (p *PlayScreen) Render(surface Surface) {
	RenderPlay(surface, p.Game, p.Messages)
}

func (p *PlayScreen) HandleInput(cmd Command) Screen {
	if cmd.Kind == CmdQuit {
		return nil
	}

	if p.Game.IsOver() {
		if cmd.Kind == CmdConfirm {
			return &EndScreen{Win: false, newGame: p.newGame}
		}
		return p
	}

	switch cmd.Kind {
	case CmdConfirm:
		return &EndScreen{Win: true, newGame: p.newGame}
	case CmdCancel:
		return &EndScreen{Win: false, newGame: p.newGame}
	case CmdMove:
		p.Game.Move(cmd.Dx, cmd.Dy, cmd.Dz)
	case CmdWait:
		p.Game.Wait()
	default:
		return p
	}

	// Messages of this turn replace the previous turn's.
	p.Messages = p.Game.DrainMessages()
	return p
}

// EndScreen is the win or lose screen. Enter goes back to the start screen,
// Escape quits.
type EndScreen struct {
	Win bool

	newGame NewGameFunc
}

func (e *EndScreen) Name() string {
	if e.Win {
		return "win"
	}
	return "lose"
}

func (e *EndScreen) Render(surface Surface) {
	_, height := surface.Size()
	for i := 0; i < 22 && i+1 < height; i++ {
		if e.Win {
			DrawText(surface, 2, i+1, "You win!", types.ColorWhite, bannerColor(i))
		} else {
			DrawText(surface, 2, i+1, "You lose! :(", types.ColorWhite, types.ColorRed)
		}
	}
}

// bannerColor cycles the win banner through a few backgrounds.
func bannerColor(row int) uint32 {
	palette := []uint32{types.ColorGoldenrod, types.ColorLime, types.ColorYellow, types.ColorGray}
	return palette[row%len(palette)]
}

func (e *EndScreen) HandleInput(cmd Command) Screen {
	switch cmd.Kind {
	case CmdQuit, CmdCancel:
		return nil
	case CmdConfirm:
		return NewStartScreen(e.newGame)
	}
	return e
}
