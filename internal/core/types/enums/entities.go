package enums

import "strings"

// EntityKind is the coarse classification carried inside an EntityID.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindCreature
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:   "PLAYER",
	EntityKindCreature: "CREATURE",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER":   EntityKindPlayer,
	"CREATURE": EntityKindCreature,
}

// String returns the wire/log name of the kind.
func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind converts a name back to the enum (case-insensitive).
func ParseEntityKind(s string) EntityKind {
	if val, ok := entityKindStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityKindUnknown
}
