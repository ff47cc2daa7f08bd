package api

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDirectionPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       DirectionPayload
		wantErr bool
	}{
		{"east", DirectionPayload{Dx: 1}, false},
		{"north-west", DirectionPayload{Dx: -1, Dy: -1}, false},
		{"down stairs", DirectionPayload{Dz: 1}, false},
		{"up stairs", DirectionPayload{Dz: -1}, false},
		{"zero", DirectionPayload{}, true},
		{"too far", DirectionPayload{Dx: 2}, true},
		{"two levels", DirectionPayload{Dz: -2}, true},
		{"diagonal stairs", DirectionPayload{Dx: 1, Dz: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInitPayload_Validate(t *testing.T) {
	if err := (InitPayload{Name: "Rogue"}).Validate(); err != nil {
		t.Errorf("short name rejected: %v", err)
	}
	if err := (InitPayload{Name: strings.Repeat("x", MaxNameLength+1)}).Validate(); err == nil {
		t.Error("long name accepted")
	}
}

func TestClientCommand_Decode(t *testing.T) {
	raw := `{"action":"MOVE","payload":{"dx":0,"dy":0,"dz":1}}`

	var cmd ClientCommand
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		t.Fatal(err)
	}
	var dir DirectionPayload
	if err := json.Unmarshal(cmd.Payload, &dir); err != nil {
		t.Fatal(err)
	}
	if cmd.Action != "MOVE" || dir.Dz != 1 {
		t.Errorf("decoded %+v / %+v", cmd, dir)
	}
}
