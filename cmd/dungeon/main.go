package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Goluxas/roguelike-tutorial/internal/engine"
	"github.com/Goluxas/roguelike-tutorial/internal/ui"
	"github.com/Goluxas/roguelike-tutorial/internal/version"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var seed int64
	var configPath, logPath string
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for a random seed per game)")
	flag.StringVar(&configPath, "config", "", "Path to a YAML game config")
	flag.StringVar(&logPath, "log", "dungeon.log", "Log file (the terminal is the game screen)")
	flag.Parse()

	logFile, err := logger.InitFile(logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	newGame := func() (*engine.Game, error) {
		c := cfg
		if seed != 0 {
			c.Seed = seed
		} else {
			c.Seed = time.Now().UnixNano()
		}
		return engine.NewGame(c)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	ui.NewApp(screen, newGame).Run()
}
