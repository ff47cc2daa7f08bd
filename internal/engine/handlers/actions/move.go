package actions

import (
	"github.com/Goluxas/roguelike-tutorial/internal/engine/handlers"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
)

// HandleMove moves the player one step, or along stairs when Dz is set.
// Bumping into a creature attacks it.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if ctx.Session.IsOver() {
		return handlers.EmptyResult(), nil
	}
	ctx.Session.Move(p.Dx, p.Dy, p.Dz)
	return handlers.Result{TookTurn: true}, nil
}
