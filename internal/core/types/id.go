package types

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types/enums"
)

// EntityID is a 64-bit entity identifier.
//
// Bit layout (high to low):
//
//	[ reserved (8) | Kind (8) | Serial (48) ]
//
// Kind lets logs and clients tell the player from creatures without looking
// the entity up; Serial is unique per process.
type EntityID uint64

// NilEntityID marks "no entity".
const NilEntityID EntityID = 0

const (
	bitsSerial = 48
	bitsKind   = 8

	shiftKind = bitsSerial

	maskSerial = (1 << bitsSerial) - 1
	maskKind   = (1 << bitsKind) - 1
)

var serialCounter atomic.Uint64

// PackEntityID assembles an EntityID. No range checks: serial is masked.
func PackEntityID(kind enums.EntityKind, serial uint64) EntityID {
	return EntityID(uint64(kind)&maskKind<<shiftKind | serial&maskSerial)
}

// NextEntityID returns a fresh id of the given kind.
func NextEntityID(kind enums.EntityKind) EntityID {
	return PackEntityID(kind, serialCounter.Add(1))
}

// Kind returns the entity kind stored in the id.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// Serial returns the per-process serial number.
func (id EntityID) Serial() uint64 {
	return uint64(id) & maskSerial
}

// IsNil reports whether the id is NilEntityID.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String is meant for logs.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s #%d]", id.Kind(), id.Serial())
}

// MarshalJSON encodes the id as a decimal string so JavaScript clients do
// not lose precision on uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON accepts both the string and the numeric form.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
