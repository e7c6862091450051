package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"snek/config"
	"snek/game"
	"snek/game/manager"
	"snek/ui"
)

func defaultConfigPath() string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, ".config", "snek", "config.toml")
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to the TOML configuration file")
	backend := flag.String("backend", "", "Drawing backend: raylib or terminal (overrides the config file)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	writeConfig := flag.Bool("write-config", false, "Write the effective configuration to -config and exit")
	flag.Parse()

	log.SetPrefix("snek: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var (
		b      ui.Backend
		layout ui.Layout
	)
	switch cfg.Backend {
	case config.BackendTerminal:
		layout = ui.TerminalLayout
		tb, err := ui.NewTerminalBackend(nil, cfg.Window.TargetFPS, manager.NewRandom(cfg.Seed))
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		b = tb
	default:
		layout = ui.Layout{
			CellSize:      cfg.Window.CellSize,
			LineThickness: cfg.Window.LineThickness,
			HUDHeight:     2*cfg.Window.FontSize + 10,
			FontSize:      cfg.Window.FontSize,
		}
		b = ui.NewRaylibBackend(cfg.Window.Title, layout, cfg.Window.TargetFPS, cfg.Seed)
	}
	defer b.Close()

	g := game.NewGame(cfg.GameSettings(), b)
	log.Printf("starting %s backend, round %s", cfg.Backend, g.UUID)

	ui.Run(b, g, ui.NewRenderer(layout))

	stats := g.GetStateManager()
	log.Printf("window closed after %d rounds, high score %d, average %.2f",
		stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore())
	return nil
}

// setupLogging sends the log to cfg.LogFile. The terminal backend owns
// stderr, so without a file its log is dropped.
func setupLogging(cfg *config.Config) (*os.File, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.Backend == config.BackendTerminal {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}
