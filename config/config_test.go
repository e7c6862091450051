package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Window.Title != "Snek" {
		t.Errorf("Expected title Snek, got %q", c.Window.Title)
	}
	if c.Speed.InitialUpdatesPerMove != 30 || c.Speed.Decrement != 0.2 {
		t.Errorf("Expected default speed 30/0.2, got %g/%g", c.Speed.InitialUpdatesPerMove, c.Speed.Decrement)
	}
	if c.Backend != BackendRaylib {
		t.Errorf("Expected raylib backend, got %q", c.Backend)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.toml")
	data := `
backend = "terminal"
seed = 99

[speed]
decrement = 0.5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Backend != BackendTerminal {
		t.Errorf("Expected terminal backend, got %q", c.Backend)
	}
	if c.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", c.Seed)
	}
	if c.Speed.Decrement != 0.5 {
		t.Errorf("Expected decrement 0.5, got %g", c.Speed.Decrement)
	}
	if c.Speed.InitialUpdatesPerMove != 30 {
		t.Errorf("Expected untouched initial threshold 30, got %g", c.Speed.InitialUpdatesPerMove)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.toml")
	if err := os.WriteFile(path, []byte(`backend = "vulkan"`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.toml")
	if err := os.WriteFile(path, []byte(`backend = `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero cell", func(c *Config) { c.Window.CellSize = 0 }, true},
		{"negative line", func(c *Config) { c.Window.LineThickness = -1 }, true},
		{"no line", func(c *Config) { c.Window.LineThickness = 0 }, false},
		{"zero fps", func(c *Config) { c.Window.TargetFPS = 0 }, true},
		{"floor below one", func(c *Config) { c.Speed.MinUpdatesPerMove = 0 }, true},
		{"start below floor", func(c *Config) { c.Speed.InitialUpdatesPerMove = 0.5 }, true},
		{"negative decrement", func(c *Config) { c.Speed.Decrement = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snek.toml")
	c := Default()
	c.Backend = BackendTerminal
	c.Window.CellSize = 30

	if err := c.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *c {
		t.Errorf("Expected %+v, got %+v", *c, *loaded)
	}
}

func TestGameSettings(t *testing.T) {
	s := Default().GameSettings()
	if s.InitialUpdatesPerMove != 30 || s.MinUpdatesPerMove != 1 || s.InitialCounter != 1 {
		t.Errorf("Unexpected settings %+v", s)
	}
}
