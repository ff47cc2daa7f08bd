package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/internal/server"
	"github.com/Goluxas/roguelike-tutorial/internal/version"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Flags
	var seed int64
	var configPath, addr string
	flag.Int64Var(&seed, "seed", 0, "World seed for every session (0 for a random seed per session)")
	flag.StringVar(&configPath, "config", "", "Path to a YAML game config")
	flag.StringVar(&addr, "addr", "", "Listen address (default :$CD_PORT or :8080)")
	flag.Parse()

	logger.Log.Info("Starting dungeon server...")
	logger.Log.Info(version.String())

	// 2. Config
	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
		cfg = loaded
	}

	randomSeed := true
	if seed != 0 {
		cfg.Seed = seed
		randomSeed = false
		logger.Log.Infof("Using explicit seed: %d", seed)
	}

	if addr == "" {
		port := os.Getenv("CD_PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	// 3. Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, randomSeed, addr)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("Server error")
	}

	logger.Log.Info("Done.")
}
