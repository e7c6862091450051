package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"snek/game"

	"github.com/BurntSushi/toml"
)

const (
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
)

var ErrUnknownBackend = errors.New("unknown backend")

type Window struct {
	Title         string `toml:"title"`
	CellSize      int    `toml:"cell_size"`
	LineThickness int    `toml:"line_thickness"`
	TargetFPS     int    `toml:"target_fps"`
	FontSize      int    `toml:"font_size"`
}

type Speed struct {
	InitialUpdatesPerMove float64 `toml:"initial_updates_per_move"`
	Decrement             float64 `toml:"decrement"`
	MinUpdatesPerMove     float64 `toml:"min_updates_per_move"`
	InitialCounter        int     `toml:"initial_counter"`
}

type Config struct {
	Backend string `toml:"backend"`
	Seed    uint64 `toml:"seed"`
	LogFile string `toml:"log_file"`
	Window  Window `toml:"window"`
	Speed   Speed  `toml:"speed"`
}

func Default() *Config {
	s := game.DefaultSettings()
	return &Config{
		Backend: BackendRaylib,
		Window: Window{
			Title:         "Snek",
			CellSize:      50,
			LineThickness: 2,
			TargetFPS:     60,
			FontSize:      20,
		},
		Speed: Speed{
			InitialUpdatesPerMove: s.InitialUpdatesPerMove,
			Decrement:             s.Decrement,
			MinUpdatesPerMove:     s.MinUpdatesPerMove,
			InitialCounter:        s.InitialCounter,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration as TOML, creating the parent directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRaylib, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize)
	}
	if c.Window.LineThickness < 0 {
		return fmt.Errorf("window.line_thickness must not be negative, got %d", c.Window.LineThickness)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("window.target_fps must be positive, got %d", c.Window.TargetFPS)
	}
	if c.Speed.MinUpdatesPerMove < 1 {
		return fmt.Errorf("speed.min_updates_per_move must be at least 1, got %g", c.Speed.MinUpdatesPerMove)
	}
	if c.Speed.InitialUpdatesPerMove < c.Speed.MinUpdatesPerMove {
		return fmt.Errorf("speed.initial_updates_per_move %g is below the minimum %g",
			c.Speed.InitialUpdatesPerMove, c.Speed.MinUpdatesPerMove)
	}
	if c.Speed.Decrement < 0 {
		return fmt.Errorf("speed.decrement must not be negative, got %g", c.Speed.Decrement)
	}
	return nil
}

func (c *Config) GameSettings() game.Settings {
	return game.Settings{
		InitialUpdatesPerMove: c.Speed.InitialUpdatesPerMove,
		Decrement:             c.Speed.Decrement,
		MinUpdatesPerMove:     c.Speed.MinUpdatesPerMove,
		InitialCounter:        c.Speed.InitialCounter,
	}
}
