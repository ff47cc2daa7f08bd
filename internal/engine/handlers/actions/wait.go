package actions

import (
	"github.com/Goluxas/roguelike-tutorial/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Session.IsOver() {
		return handlers.EmptyResult(), nil
	}
	ctx.Session.Wait()
	return handlers.Result{TookTurn: true}, nil
}
