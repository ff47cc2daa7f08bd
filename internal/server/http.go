package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/internal/network"
	"github.com/Goluxas/roguelike-tutorial/internal/version"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
)

type Server struct {
	// Config is the template for every new session.
	Config engine.Config
	// RandomSeed gives every session its own seed instead of Config.Seed.
	RandomSeed bool
	Addr       string

	hub *network.Hub
}

func New(cfg engine.Config, randomSeed bool, addr string) *Server {
	return &Server{
		Config:     cfg,
		RandomSeed: randomSeed,
		Addr:       addr,
		hub:        network.NewHub(),
	}
}

// Hub exposes the live sessions.
func (s *Server) Hub() *network.Hub { return s.hub }

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.hub)
	debugHandler.RegisterRoutes(mux)

	// net/http/pprof registers itself on the default mux.
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Log.Infof("Dungeon server running on %s", s.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) sessionConfig() engine.Config {
	cfg := s.Config
	if s.RandomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// handleWS upgrades the connection and gives it a fresh game.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	session, err := engine.NewSession(s.sessionConfig())
	if err != nil {
		logger.Log.WithError(err).Error("Session creation failed")
		http.Error(w, "cannot create game", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.hub, session, conn)
	client.log().Info("Client connected")

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Current()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}
