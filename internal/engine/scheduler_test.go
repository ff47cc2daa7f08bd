package engine

import (
	"reflect"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
)

// turnLog records who acted, in order.
type turnLog struct {
	names []string
}

func (l *turnLog) actor(name string, extra func(e *domain.Entity)) *domain.Entity {
	return domain.NewEntity(domain.Template{
		Name: name,
		Behaviors: domain.Behaviors{
			Act: func(e *domain.Entity) {
				l.names = append(l.names, e.Name())
				if extra != nil {
					extra(e)
				}
			},
		},
	})
}

func (l *turnLog) take() []string {
	out := l.names
	l.names = nil
	return out
}

func TestScheduler_RoundRobin(t *testing.T) {
	var log turnLog
	s := NewScheduler(9)
	a, b, c := log.actor("A", nil), log.actor("B", nil), log.actor("C", nil)
	s.Add(a)
	s.Add(b)
	s.Add(c)

	s.Start()

	want := []string{"A", "B", "C", "A", "B", "C", "A", "B", "C"}
	if got := log.take(); !reflect.DeepEqual(got, want) {
		t.Fatalf("turns = %v, want %v", got, want)
	}
	if !s.IsLocked() {
		t.Error("hitting MaxTurnsPerRun should lock the engine")
	}

	// Removing B between runs leaves A, C alternating.
	s.Remove(b)
	s.MaxTurnsPerRun = 4
	s.Unlock()

	want = []string{"A", "C", "A", "C"}
	if got := log.take(); !reflect.DeepEqual(got, want) {
		t.Errorf("turns after removing B = %v, want %v", got, want)
	}
}

func TestScheduler_PlayerLocksEveryTurn(t *testing.T) {
	var log turnLog
	s := NewScheduler(100)
	player := log.actor("P", func(e *domain.Entity) { s.Lock() })
	s.Add(player)
	s.Add(log.actor("A", nil))
	s.Add(log.actor("B", nil))

	s.Start()
	if got := log.take(); !reflect.DeepEqual(got, []string{"P"}) {
		t.Fatalf("start ran %v, want only the player", got)
	}
	if !s.IsLocked() {
		t.Fatal("engine should wait for the player")
	}

	for i := 0; i < 3; i++ {
		s.Unlock()
		if got := log.take(); !reflect.DeepEqual(got, []string{"A", "B", "P"}) {
			t.Fatalf("round %d = %v, want [A B P]", i, got)
		}
	}
	if s.Turns() != 10 {
		t.Errorf("Turns() = %d, want 10", s.Turns())
	}
}

func TestScheduler_AddMidGameAppends(t *testing.T) {
	var log turnLog
	s := NewScheduler(100)
	s.Add(log.actor("P", func(e *domain.Entity) { s.Lock() }))
	s.Add(log.actor("A", nil))
	s.Start()
	log.take()

	s.Add(log.actor("N", nil))
	s.Unlock()

	if got := log.take(); !reflect.DeepEqual(got, []string{"A", "N", "P"}) {
		t.Errorf("turns = %v, want [A N P]", got)
	}

	// Double add keeps one slot.
	before := s.Len()
	s.Add(s.rotation[0])
	if s.Len() != before {
		t.Error("adding an actor twice grew the rotation")
	}
}

func TestScheduler_RemoveCurrentActor(t *testing.T) {
	var log turnLog
	s := NewScheduler(5)

	var b *domain.Entity
	b = log.actor("B", func(e *domain.Entity) { s.Remove(b) })
	s.Add(log.actor("A", nil))
	s.Add(b)
	s.Add(log.actor("C", nil))

	s.Start()

	want := []string{"A", "B", "C", "A", "C"}
	if got := log.take(); !reflect.DeepEqual(got, want) {
		t.Errorf("turns = %v, want %v", got, want)
	}
}

func TestScheduler_RemoveOnlyActor(t *testing.T) {
	var log turnLog
	s := NewScheduler(0)

	var solo *domain.Entity
	solo = log.actor("S", func(e *domain.Entity) { s.Remove(solo) })
	s.Add(solo)

	s.Start()

	if got := log.take(); !reflect.DeepEqual(got, []string{"S"}) {
		t.Errorf("turns = %v, want [S]", got)
	}
	if s.Len() != 0 || !s.IsLocked() {
		t.Errorf("Len=%d locked=%v, want empty and locked", s.Len(), s.IsLocked())
	}
	if s.Next() != nil {
		t.Error("Next() should be nil on an empty rotation")
	}

	// Further unlocks simply yield nothing.
	s.Unlock()
	if s.Step() {
		t.Error("Step on an empty rotation should report false")
	}
}

func TestScheduler_RemoveBeforeCursor(t *testing.T) {
	var log turnLog
	s := NewScheduler(100)
	a := log.actor("A", nil)
	s.Add(a)
	// B kills A (earlier in the rotation) and then locks.
	s.Add(log.actor("B", func(e *domain.Entity) { s.Remove(a); s.Lock() }))
	s.Add(log.actor("C", func(e *domain.Entity) { s.Lock() }))

	s.Start()
	if got := log.take(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("turns = %v", got)
	}

	// C was after B before the removal and still is.
	if s.Next().Name() != "C" {
		t.Errorf("Next() = %s, want C", s.Next().Name())
	}
}

func TestScheduler_StepIgnoresLock(t *testing.T) {
	var log turnLog
	s := NewScheduler(0)
	s.Add(log.actor("A", nil))
	s.Add(log.actor("B", nil))

	// Never started: the engine stays locked, Step drives it by hand.
	s.Unlock()
	if len(log.names) != 0 {
		t.Fatal("Unlock before Start must not run turns")
	}

	s.Lock()
	for i := 0; i < 3; i++ {
		s.Step()
	}
	if got := log.take(); !reflect.DeepEqual(got, []string{"A", "B", "A"}) {
		t.Errorf("turns = %v, want [A B A]", got)
	}
}

func TestScheduler_EmptyStart(t *testing.T) {
	s := NewScheduler(0)
	s.Start()

	if !s.IsLocked() || s.Turns() != 0 {
		t.Errorf("locked=%v turns=%d, want locked with no turns", s.IsLocked(), s.Turns())
	}
	if dump := s.DebugDump(); dump == nil || len(dump) != 0 {
		t.Errorf("DebugDump() = %v, want empty non-nil slice", dump)
	}
}
