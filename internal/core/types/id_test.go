package types

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types/enums"
)

func TestPackEntityID_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		kind   enums.EntityKind
		serial uint64
	}{
		{"player first", enums.EntityKindPlayer, 1},
		{"creature", enums.EntityKindCreature, 42},
		{"serial max", enums.EntityKindCreature, maskSerial},
		{"unknown zero", enums.EntityKindUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackEntityID(tt.kind, tt.serial)
			if got := id.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := id.Serial(); got != tt.serial {
				t.Errorf("Serial() = %d, want %d", got, tt.serial)
			}
		})
	}
}

func TestPackEntityID_SerialMasked(t *testing.T) {
	id := PackEntityID(enums.EntityKindPlayer, 1<<bitsSerial|7)
	if id.Kind() != enums.EntityKindPlayer {
		t.Errorf("overflowing serial leaked into kind: %v", id.Kind())
	}
	if id.Serial() != 7 {
		t.Errorf("Serial() = %d, want 7", id.Serial())
	}
}

func TestNextEntityID_Unique(t *testing.T) {
	seen := make(map[EntityID]bool)
	for i := 0; i < 1000; i++ {
		id := NextEntityID(enums.EntityKindCreature)
		if seen[id] {
			t.Fatalf("duplicate id %v", id)
		}
		if id.IsNil() {
			t.Fatal("NextEntityID returned nil id")
		}
		seen[id] = true
	}
}

func TestEntityID_String(t *testing.T) {
	if got := NilEntityID.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
	id := PackEntityID(enums.EntityKindPlayer, 9)
	if got := id.String(); got != "[PLAYER #9]" {
		t.Errorf("String() = %q, want %q", got, "[PLAYER #9]")
	}
}

func TestEntityID_JSON(t *testing.T) {
	id := PackEntityID(enums.EntityKindCreature, 77)

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(`"`)) {
		t.Errorf("expected string encoding, got %s", data)
	}

	var back EntityID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != id {
		t.Errorf("round trip = %v, want %v", back, id)
	}

	// Numeric form is accepted too.
	var num EntityID
	if err := json.Unmarshal([]byte("5"), &num); err != nil {
		t.Fatalf("Unmarshal numeric: %v", err)
	}
	if num != EntityID(5) {
		t.Errorf("numeric = %d, want 5", num)
	}

	var empty EntityID = 3
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if !empty.IsNil() {
		t.Errorf("empty string should decode to nil id, got %v", empty)
	}
}
