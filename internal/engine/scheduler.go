package engine

import (
	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Scheduler - round-robin turn order over every actor on the world.
//
// The engine has two states, running and locked. Start and Unlock run turns
// until some actor calls Lock (the player does this every turn), so the
// host never blocks: it feeds input, unlocks, and the call returns once
// control is back with the player.
type Scheduler struct {
	rotation []*domain.Entity
	cursor   int // index of the actor whose turn comes next

	locked  bool
	started bool
	running bool

	// MaxTurnsPerRun stops a run that never reaches a locking actor.
	// Zero disables the limit.
	MaxTurnsPerRun int

	turns uint64
}

// NewScheduler creates a locked, not yet started scheduler.
func NewScheduler(maxTurnsPerRun int) *Scheduler {
	return &Scheduler{
		rotation:       make([]*domain.Entity, 0),
		locked:         true,
		MaxTurnsPerRun: maxTurnsPerRun,
	}
}

// Add appends e to the end of the rotation. Adding twice is a no-op.
func (s *Scheduler) Add(e *domain.Entity) {
	if s.indexOf(e) >= 0 {
		return
	}
	s.rotation = append(s.rotation, e)

	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"entity_id": e.ID,
		"actors":    len(s.rotation),
	}).Debug("Actor added to rotation.")
}

// Remove takes e out of the rotation. The actor that would have acted after
// e still acts next, including when e is the one currently acting.
func (s *Scheduler) Remove(e *domain.Entity) {
	idx := s.indexOf(e)
	if idx < 0 {
		return
	}

	copy(s.rotation[idx:], s.rotation[idx+1:])
	s.rotation[len(s.rotation)-1] = nil
	s.rotation = s.rotation[:len(s.rotation)-1]

	if idx < s.cursor {
		s.cursor--
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"entity_id": e.ID,
		"actors":    len(s.rotation),
	}).Debug("Actor removed from rotation.")
}

// Start begins running turns. Calling it again has no effect.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.locked = false

	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"actors":    len(s.rotation),
	}).Info("Engine started.")

	s.run()
}

// Lock suspends turn advancement after the current turn finishes.
func (s *Scheduler) Lock() {
	s.locked = true
}

// Unlock resumes from the actor after the one that locked. When called from
// inside a running turn it only clears the flag and the loop goes on.
func (s *Scheduler) Unlock() {
	s.locked = false
	if s.started {
		s.run()
	}
}

// Step runs exactly one turn regardless of the lock, for hosts that drive
// the engine themselves. False means the rotation is empty.
func (s *Scheduler) Step() bool {
	if len(s.rotation) == 0 {
		return false
	}
	if s.cursor >= len(s.rotation) {
		s.cursor = 0
	}

	actor := s.rotation[s.cursor]
	s.cursor++
	s.turns++

	actor.Act()
	return true
}

func (s *Scheduler) run() {
	if s.running {
		return
	}
	s.running = true
	defer func() { s.running = false }()

	ran := 0
	for !s.locked {
		if !s.Step() {
			// No actors left: nothing will ever unlock us from inside.
			s.locked = true
			logger.Log.WithField("component", "scheduler").Info("Rotation empty, engine locked.")
			return
		}

		ran++
		if s.MaxTurnsPerRun > 0 && ran >= s.MaxTurnsPerRun && !s.locked {
			s.locked = true
			logger.Log.WithFields(logrus.Fields{
				"component": "scheduler",
				"turns":     ran,
			}).Warn("Run reached MaxTurnsPerRun without a locking actor.")
			return
		}
	}
}

func (s *Scheduler) indexOf(e *domain.Entity) int {
	for i, a := range s.rotation {
		if a == e {
			return i
		}
	}
	return -1
}

// IsLocked reports whether the engine waits for Unlock.
func (s *Scheduler) IsLocked() bool { return s.locked }

// Len returns the number of scheduled actors.
func (s *Scheduler) Len() int { return len(s.rotation) }

// Turns returns how many turns have been run in total.
func (s *Scheduler) Turns() uint64 { return s.turns }

// Next returns the actor whose turn comes next, or nil.
func (s *Scheduler) Next() *domain.Entity {
	if len(s.rotation) == 0 {
		return nil
	}
	if s.cursor >= len(s.rotation) {
		return s.rotation[0]
	}
	return s.rotation[s.cursor]
}

// DebugDump returns a snapshot of the rotation for the debug endpoint.
func (s *Scheduler) DebugDump() []map[string]interface{} {
	// Empty slice, not nil, so it encodes as [] rather than null.
	result := make([]map[string]interface{}, 0, len(s.rotation))
	next := s.Next()
	for i, e := range s.rotation {
		result = append(result, map[string]interface{}{
			"id":    e.ID,
			"name":  e.Name(),
			"index": i,
			"next":  e == next,
		})
	}
	return result
}

var _ domain.Scheduler = (*Scheduler)(nil)
