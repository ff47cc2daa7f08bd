package network

import (
	"sort"
	"sync"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/pkg/api"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SendBuffer is the number of responses queued per subscriber before new
// ones are dropped.
const SendBuffer = 64

type subscriber struct {
	session *engine.Session
	ch      chan *api.ServerResponse
}

// Hub tracks the live sessions and delivers responses to their connections.
type Hub struct {
	mu sync.RWMutex
	// session ID -> subscriber
	subscribers map[string]*subscriber
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
	}
}

// Register creates the outgoing channel for a session. Registering an ID
// again closes the previous channel.
func (h *Hub) Register(s *engine.Session) <-chan *api.ServerResponse {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[s.ID]; ok {
		close(old.ch)
	}

	sub := &subscriber{session: s, ch: make(chan *api.ServerResponse, SendBuffer)}
	h.subscribers[s.ID] = sub

	logger.Log.WithFields(logrus.Fields{
		"component": "hub",
		"session":   s.ID,
		"sessions":  len(h.subscribers),
	}).Debug("Session registered.")
	return sub.ch
}

// Unregister closes the session's channel and forgets it.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[id]; ok {
		close(sub.ch)
		delete(h.subscribers, id)
	}
}

// SendTo queues msg for one session. It never blocks: a full buffer drops
// the message and returns false.
func (h *Hub) SendTo(id string, msg *api.ServerResponse) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return false
	}
	select {
	case sub.ch <- msg:
		return true
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "hub",
			"session":   id,
		}).Warn("Send buffer full, dropping response.")
		return false
	}
}

// Session returns the registered session with that ID.
func (h *Hub) Session(id string) (*engine.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return nil, false
	}
	return sub.session, true
}

// Sessions returns every live session, oldest first.
func (h *Hub) Sessions() []*engine.Session {
	h.mu.RLock()
	out := make([]*engine.Session, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		out = append(out, sub.session)
	}
	h.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID < out[j].ID
		}
		return out[i].Created.Before(out[j].Created)
	})
	return out
}

// SessionCount returns the number of live sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
