package actions

import (
	"errors"

	"github.com/Goluxas/roguelike-tutorial/internal/engine/handlers"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
)

// ErrGameInProgress is returned by CONFIRM while the player is alive.
var ErrGameInProgress = errors.New("game is still in progress")

// HandleInit starts a new game, optionally with a player name and seed.
func HandleInit(ctx handlers.Context, p api.InitPayload) (handlers.Result, error) {
	if err := ctx.Session.Restart(p.Name, p.Seed); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Restarted: true}, nil
}

// HandleConfirm acknowledges the death screen and starts over with the
// same settings.
func HandleConfirm(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Session.IsOver() {
		return handlers.Result{}, ErrGameInProgress
	}
	if err := ctx.Session.Restart("", nil); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Restarted: true}, nil
}
