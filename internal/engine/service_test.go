package engine

import (
	"encoding/json"
	"testing"

	"github.com/Goluxas/roguelike-tutorial/pkg/api"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(smallConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func command(t *testing.T, action string, payload interface{}) api.ClientCommand {
	t.Helper()
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		cmd.Payload = raw
	}
	return cmd
}

func TestSession_Execute(t *testing.T) {
	s := newTestSession(t)
	dx, dy := freeStep(t, s.Game())

	tests := []struct {
		name     string
		cmd      api.ClientCommand
		wantType string
		wantTick uint64
	}{
		{"wait", command(t, "WAIT", nil), api.TypeUpdate, 2},
		{"move", command(t, "move", api.DirectionPayload{Dx: dx, Dy: dy}), api.TypeUpdate, 3},
		{"zero move", command(t, "MOVE", api.DirectionPayload{}), api.TypeError, 3},
		{"missing payload", command(t, "MOVE", nil), api.TypeError, 3},
		{"broken payload", api.ClientCommand{Action: "MOVE", Payload: json.RawMessage(`"east"`)}, api.TypeError, 3},
		{"unknown", command(t, "FLY", nil), api.TypeError, 3},
		{"confirm while alive", command(t, "CONFIRM", nil), api.TypeError, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.Execute(tt.cmd)
			if resp.Type != tt.wantType {
				t.Errorf("Type = %s (%s), want %s", resp.Type, resp.Error, tt.wantType)
			}
			if resp.Tick != tt.wantTick {
				t.Errorf("Tick = %d, want %d", resp.Tick, tt.wantTick)
			}
			if tt.wantType == api.TypeError && resp.Error == "" {
				t.Error("error response without a reason")
			}
		})
	}
}

func TestSession_InitRestarts(t *testing.T) {
	s := newTestSession(t)
	old := s.Game()

	seed := int64(7)
	resp := s.Execute(command(t, "INIT", api.InitPayload{Name: "Hero", Seed: &seed}))
	if resp.Type != api.TypeUpdate {
		t.Fatalf("INIT failed: %s", resp.Error)
	}

	g := s.Game()
	if g == old {
		t.Fatal("INIT should build a new game")
	}
	if g.Seed() != 7 || g.Player().Name() != "Hero" {
		t.Errorf("seed %d name %q", g.Seed(), g.Player().Name())
	}
	if resp.MyEntityID != g.Player().ID.String() {
		t.Error("snapshot belongs to the old player")
	}
}

func TestSession_ConfirmAfterDeath(t *testing.T) {
	s := newTestSession(t)
	s.Game().Player().Health.HP = 0

	resp := s.Execute(command(t, "WAIT", nil))
	if !resp.GameOver {
		t.Fatal("snapshot should report game over")
	}

	// Moves are ignored while dead.
	if resp = s.Execute(command(t, "MOVE", api.DirectionPayload{Dx: 1})); !resp.GameOver {
		t.Error("move revived the player")
	}

	resp = s.Execute(command(t, "CONFIRM", nil))
	if resp.Type != api.TypeUpdate || resp.GameOver {
		t.Errorf("CONFIRM = %+v", resp)
	}
	if s.Game().IsOver() {
		t.Error("new game is over")
	}
	if s.Game().Player().Name() != "Rogue" {
		t.Errorf("restart lost the player name: %q", s.Game().Player().Name())
	}
}

func TestSession_Summary(t *testing.T) {
	s := newTestSession(t)
	s.Execute(command(t, "WAIT", nil))

	sum := s.Summary()
	if sum.ID != s.ID || sum.ID == "" {
		t.Errorf("ID = %q", sum.ID)
	}
	if sum.Seed != 42 || sum.Turns != 2 || sum.Actors != 1 || sum.Player != "Rogue" {
		t.Errorf("summary = %+v", sum)
	}
	if sum.HP <= 0 || sum.GameOver {
		t.Errorf("summary = %+v", sum)
	}
}
