package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Goluxas/roguelike-tutorial/internal/agent"
	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

// A computer player for soak-testing: against a running server with -url,
// or in-process otherwise.
func main() {
	var url, configPath string
	var turns int
	var seed int64
	flag.StringVar(&url, "url", "", "Server websocket URL, e.g. ws://localhost:8080/ws (empty plays in-process)")
	flag.StringVar(&configPath, "config", "", "YAML game config for in-process play")
	flag.IntVar(&turns, "turns", 1000, "Commands to send")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "Bot and world seed")
	flag.Parse()

	bot := agent.NewBot(seed)

	if url != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		state, err := bot.PlayRemote(ctx, url, turns)
		if err != nil {
			logger.Log.WithError(err).Fatal("Remote play failed")
		}
		report(state.Tick, state.GameOver)
		return
	}

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
		cfg = loaded
	}
	cfg.Seed = seed

	session, err := engine.NewSession(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to start game")
	}
	state := bot.PlayLocal(session, turns)
	report(state.Tick, state.GameOver)
}

func report(tick uint64, over bool) {
	logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"tick":      tick,
		"game_over": over,
	}).Info("Bot finished.")
}
