package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/log"
	"github.com/plus3/blockfall/round"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, cfg.LogLevel())
	game, err := round.New(cfg, logger)
	if err != nil {
		logger.Errorf("failed to start round: %v", err)
		os.Exit(1)
	}

	backend := debugui_ebiten.NewBackend("Blockfall", cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Window.TPS)

	g := &Game{
		round:   game,
		overlay: debugui.New(),
		imgui:   backend,
		cfg:     cfg,
		dt:      cfg.TickPeriod(),
		log:     logger.With("Game"),
	}

	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("game exited: %v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(path)
}
