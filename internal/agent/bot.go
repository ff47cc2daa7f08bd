package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Bot is a computer player. It sees exactly what a remote client sees (the
// snapshot) and answers with the command a client would send, so the same
// Bot can drive a local Session or a server over the websocket.
//
// Policy, in order:
//  1. Dead: confirm, which starts a new game.
//  2. A creature next to us: bump into it.
//  3. Standing on stairs down: take them.
//  4. A creature in view: step toward it.
//  5. Otherwise wander onto a random free neighbor, or wait.
type Bot struct {
	rng *rand.Rand
}

func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Decide picks the next command for state.
func (b *Bot) Decide(state *api.ServerResponse) api.ClientCommand {
	if state.GameOver {
		return command(domain.ActionConfirm, nil)
	}

	me := findSelf(state)
	if me == nil {
		return command(domain.ActionWait, nil)
	}
	x, y := me.Pos.X, me.Pos.Y

	occupied := make(map[[2]int]bool, len(state.Entities))
	var nearest *api.EntityView
	bestDist := -1
	for i := range state.Entities {
		e := &state.Entities[i]
		occupied[[2]int{e.Pos.X, e.Pos.Y}] = true
		if e.ID == me.ID || e.Pos.Z != me.Pos.Z {
			continue
		}
		d := chebyshev(x, y, e.Pos.X, e.Pos.Y)
		if bestDist < 0 || d < bestDist {
			nearest, bestDist = e, d
		}
	}

	// 2. Attack
	if nearest != nil && bestDist == 1 {
		return move(nearest.Pos.X-x, nearest.Pos.Y-y, 0)
	}

	tiles := make(map[[2]int]api.TileView, len(state.Map))
	for _, t := range state.Map {
		tiles[[2]int{t.X, t.Y}] = t
	}

	// 3. Descend
	if t, ok := tiles[[2]int{x, y}]; ok && t.Symbol == string(domain.StairsDownTile.Glyph().Char()) {
		return move(0, 0, 1)
	}

	free := func(nx, ny int) bool {
		t, ok := tiles[[2]int{nx, ny}]
		return ok && t.IsWalkable && !occupied[[2]int{nx, ny}]
	}

	// 4. Chase
	if nearest != nil {
		dx, dy := sign(nearest.Pos.X-x), sign(nearest.Pos.Y-y)
		if free(x+dx, y+dy) {
			return move(dx, dy, 0)
		}
	}

	// 5. Wander
	var options [][2]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && free(x+dx, y+dy) {
				options = append(options, [2]int{dx, dy})
			}
		}
	}
	if len(options) == 0 {
		return command(domain.ActionWait, nil)
	}
	pick := options[b.rng.Intn(len(options))]
	return move(pick[0], pick[1], 0)
}

// PlayLocal runs turns commands against s and returns the last response.
func (b *Bot) PlayLocal(s *engine.Session, turns int) *api.ServerResponse {
	state := s.Snapshot()
	for i := 0; i < turns; i++ {
		cmd := b.Decide(state)
		state = s.Execute(cmd)
		if state.Type == api.TypeError {
			logger.Log.WithFields(logrus.Fields{
				"component": "bot",
				"session":   s.ID,
				"action":    cmd.Action,
			}).Warn("Bot command rejected: " + state.Error)
			state = s.Snapshot()
		}
	}
	return state
}

// PlayRemote connects to a server's /ws endpoint and plays turns commands.
// It returns the last snapshot received.
func (b *Bot) PlayRemote(ctx context.Context, url string, turns int) (*api.ServerResponse, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	// The server speaks first with the opening snapshot.
	state := &api.ServerResponse{}
	if err := conn.ReadJSON(state); err != nil {
		return nil, fmt.Errorf("read opening snapshot: %w", err)
	}

	for i := 0; i < turns; i++ {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		cmd := b.Decide(state)
		if err := conn.WriteJSON(cmd); err != nil {
			return state, fmt.Errorf("send %s: %w", cmd.Action, err)
		}

		resp := &api.ServerResponse{}
		if err := conn.ReadJSON(resp); err != nil {
			return state, fmt.Errorf("read response: %w", err)
		}
		if resp.Type == api.TypeError {
			logger.Log.WithFields(logrus.Fields{
				"component": "bot",
				"action":    cmd.Action,
			}).Warn("Bot command rejected: " + resp.Error)
			continue
		}
		state = resp
	}
	return state, nil
}

func findSelf(state *api.ServerResponse) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].ID == state.MyEntityID {
			return &state.Entities[i]
		}
	}
	return nil
}

func command(action domain.ActionType, payload interface{}) api.ClientCommand {
	cmd := api.ClientCommand{Action: action.String()}
	if payload != nil {
		// Payloads are plain structs; marshalling cannot fail.
		raw, _ := json.Marshal(payload)
		cmd.Payload = raw
	}
	return cmd
}

func move(dx, dy, dz int) api.ClientCommand {
	return command(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy, Dz: dz})
}

func chebyshev(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
