package domain

import "strings"

// ActionType identifies what a remote or local host asks the player to do.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionWait
	ActionConfirm
)

var actionStringToCmd = map[string]ActionType{
	"INIT":    ActionInit,
	"MOVE":    ActionMove,
	"WAIT":    ActionWait,
	"CONFIRM": ActionConfirm,
}

var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionMove:    "MOVE",
	ActionWait:    "WAIT",
	ActionConfirm: "CONFIRM",
}

// ParseAction converts the wire name to an ActionType (case-insensitive).
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String implements fmt.Stringer.
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// TakesTurn reports whether the action ends the player's turn.
func (a ActionType) TakesTurn() bool {
	return a == ActionMove || a == ActionWait
}
