package network

import (
	"os"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
	"github.com/Goluxas/roguelike-tutorial/pkg/dungeon"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newSession(t *testing.T) *engine.Session {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 1
	cfg.Dungeon = dungeon.Params{Width: 20, Height: 12, Depth: 1, MaxRooms: 3, MinRoom: 3, MaxRoom: 5}
	cfg.Spawns = nil
	s, err := engine.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestHub_RegisterSendUnregister(t *testing.T) {
	h := NewHub()
	s := newSession(t)

	ch := h.Register(s)
	if h.SessionCount() != 1 {
		t.Fatalf("SessionCount = %d", h.SessionCount())
	}
	if got, ok := h.Session(s.ID); !ok || got != s {
		t.Error("Session lookup failed")
	}

	msg := &api.ServerResponse{Type: api.TypeUpdate, Tick: 5}
	if !h.SendTo(s.ID, msg) {
		t.Fatal("SendTo failed")
	}
	if got := <-ch; got != msg {
		t.Errorf("received %+v", got)
	}

	h.Unregister(s.ID)
	if _, open := <-ch; open {
		t.Error("channel should be closed after Unregister")
	}
	if h.SendTo(s.ID, msg) {
		t.Error("SendTo succeeded for an unregistered session")
	}
	h.Unregister(s.ID) // second call is a no-op
}

func TestHub_SendToDropsWhenFull(t *testing.T) {
	h := NewHub()
	s := newSession(t)
	h.Register(s)

	for i := 0; i < SendBuffer; i++ {
		if !h.SendTo(s.ID, &api.ServerResponse{}) {
			t.Fatalf("send %d failed before the buffer filled", i)
		}
	}
	if h.SendTo(s.ID, &api.ServerResponse{}) {
		t.Error("send into a full buffer should be dropped")
	}
}

func TestHub_ReRegisterClosesOldChannel(t *testing.T) {
	h := NewHub()
	s := newSession(t)

	first := h.Register(s)
	second := h.Register(s)

	if _, open := <-first; open {
		t.Error("old channel still open")
	}
	h.SendTo(s.ID, &api.ServerResponse{Tick: 1})
	if got := <-second; got.Tick != 1 {
		t.Errorf("new channel got %+v", got)
	}
	if h.SessionCount() != 1 {
		t.Errorf("SessionCount = %d", h.SessionCount())
	}
}

func TestHub_SessionsOrdered(t *testing.T) {
	h := NewHub()
	a, b := newSession(t), newSession(t)
	h.Register(b)
	h.Register(a)

	got := h.Sessions()
	if len(got) != 2 {
		t.Fatalf("Sessions = %d", len(got))
	}
	if got[0].Created.After(got[1].Created) {
		t.Error("sessions not sorted by creation time")
	}
}
