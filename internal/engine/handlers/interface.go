package handlers

import (
	"encoding/json"
)

// Controller is what a command handler may do to a play session.
// engine.Session implements it.
type Controller interface {
	Move(dx, dy, dz int) bool
	Wait()
	IsOver() bool
	// Restart replaces the current game with a fresh one. An empty name
	// keeps the current player name; a nil seed draws a new seed.
	Restart(name string, seed *int64) error
}

// Context carries the session a handler acts on.
type Context struct {
	Session Controller
}

// Result - what a handler reports back to the session.
// Handlers never write to the player's inbox directly; game messages come
// from the systems.
type Result struct {
	// TookTurn is set when the command handed the turn to the other actors.
	TookTurn bool
	// Restarted is set when a new game replaced the old one.
	Restarted bool
}

// HandlerFunc is the contract for every command (MOVE, WAIT, ...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult is a successful result with no side effects to report.
func EmptyResult() Result {
	return Result{}
}
