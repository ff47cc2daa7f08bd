package server

import (
	"encoding/json"
	"net/http"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/internal/network"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
)

// DebugHandler exposes the live sessions' internal state.
type DebugHandler struct {
	Hub *network.Hub
}

func NewDebugHandler(h *network.Hub) *DebugHandler {
	return &DebugHandler{Hub: h}
}

// RegisterRoutes registers the debug endpoints.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/rotation", h.handleRotation)
}

// /debug/sessions - every connected session
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.Hub.Sessions()
	summary := make([]engine.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summary = append(summary, s.Summary())
	}
	writeJSON(w, summary)
}

// /debug/rotation?id=<session> - the turn order of one session's game
func (h *DebugHandler) handleRotation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	session, ok := h.Hub.Session(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, session.Rotation())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Any origin, for a local debug page.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}
