// Package config loads hexgarden settings from a TOML file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/kernel"
	"github.com/chazu/hexgarden/pkg/tree"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Config holds hexgarden configuration.
type Config struct {
	Layout      LayoutConfig      `toml:"layout"`
	Prism       PrismConfig       `toml:"prism"`
	Interaction InteractionConfig `toml:"interaction"`
	Physics     tree.Physics      `toml:"physics"`
	Spawn       tree.Spawn        `toml:"spawn"`
	Growth      tree.Growth       `toml:"growth"`
	Frame       FrameConfig       `toml:"frame"`
	Seed        SeedConfig        `toml:"seed"`
	Log         LogConfig         `toml:"log"`
}

// LayoutConfig shapes the grid.
type LayoutConfig struct {
	Orientation string  `toml:"orientation"` // "flat" or "pointy"
	Size        float64 `toml:"size"`
	Radius      int     `toml:"radius"`
}

// PrismConfig shapes the placed prisms.
type PrismConfig struct {
	Shrink      float64 `toml:"shrink"`
	Height      float64 `toml:"height"`
	Bevel       float64 `toml:"bevel"`
	LabelOffset float64 `toml:"label_offset"`
	MeshCells   int     `toml:"mesh_cells"`
}

// InteractionConfig tunes pointer handling and the camera.
type InteractionConfig struct {
	ClickThreshold2 float64 `toml:"click_threshold2"`
	FrustumSize     float64 `toml:"frustum_size"`
	MinZoom         float64 `toml:"min_zoom"`
	MaxZoom         float64 `toml:"max_zoom"`
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
}

// FrameConfig bounds the per-frame step.
type FrameConfig struct {
	MaxStepMS float64 `toml:"max_step_ms"`
}

// SeedConfig controls initial placement.
type SeedConfig struct {
	Enabled  bool    `toml:"enabled"`
	MinItems int     `toml:"min_items"`
	MaxItems int     `toml:"max_items"`
	PerRing  float64 `toml:"per_ring"`
	Bias     float64 `toml:"bias"`
	Attempts int     `toml:"attempts"`
	Random   uint64  `toml:"random"` // 0 picks a fresh seed each run
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{Orientation: "flat", Size: 2.5, Radius: 15},
		Prism: PrismConfig{
			Shrink:      0.96,
			Height:      0.1,
			Bevel:       0.16,
			LabelOffset: 0.16,
			MeshCells:   64,
		},
		Interaction: InteractionConfig{
			ClickThreshold2: 9,
			FrustumSize:     120,
			MinZoom:         0.2,
			MaxZoom:         8,
			Width:           1280,
			Height:          800,
		},
		Physics: tree.DefaultPhysics(),
		Spawn:   tree.DefaultSpawn(),
		Growth:  tree.DefaultGrowth(),
		Frame:   FrameConfig{MaxStepMS: 50},
		Seed: SeedConfig{
			Enabled:  true,
			MinItems: 10,
			MaxItems: 30,
			PerRing:  1.2,
			Bias:     1.7,
			Attempts: 1000,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the hexgarden config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hexgarden")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return write(f, cfg)
}

// write encodes cfg to w and closes it. A close error is returned when
// encoding succeeded.
func write(w io.WriteCloser, cfg *Config) error {
	encErr := toml.NewEncoder(w).Encode(cfg)
	closeErr := w.Close()
	if encErr != nil {
		return fmt.Errorf("config: %w", encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("config: %w", closeErr)
	}
	return nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	if _, err := hex.OrientationByName(c.Layout.Orientation); err != nil {
		return fmt.Errorf("config: layout: %w", err)
	}
	if c.Layout.Size <= 0 {
		return fmt.Errorf("config: layout: size must be positive, got %g", c.Layout.Size)
	}
	if c.Layout.Radius < 0 {
		return fmt.Errorf("config: layout: radius must not be negative, got %d", c.Layout.Radius)
	}
	if c.Spawn.MinChildren < 0 || c.Spawn.MaxChildren < c.Spawn.MinChildren {
		return fmt.Errorf("config: spawn: children range %d..%d", c.Spawn.MinChildren, c.Spawn.MaxChildren)
	}
	if c.Spawn.MinGrandchildren < 0 || c.Spawn.MaxGrandchildren < c.Spawn.MinGrandchildren {
		return fmt.Errorf("config: spawn: grandchildren range %d..%d", c.Spawn.MinGrandchildren, c.Spawn.MaxGrandchildren)
	}
	if c.Spawn.Segments < 1 {
		return fmt.Errorf("config: spawn: segments must be at least 1, got %d", c.Spawn.Segments)
	}
	if c.Frame.MaxStepMS <= 0 {
		return fmt.Errorf("config: frame: max_step_ms must be positive, got %g", c.Frame.MaxStepMS)
	}
	return nil
}

// HexLayout builds the grid layout described by the config.
func (c *Config) HexLayout() (hex.Layout, error) {
	o, err := hex.OrientationByName(c.Layout.Orientation)
	if err != nil {
		return hex.Layout{}, fmt.Errorf("config: %w", err)
	}
	size := v2.Vec{X: c.Layout.Size, Y: c.Layout.Size}
	return hex.NewLayout(o, size, v2.Vec{}), nil
}

// PrismOptions returns the prism shape described by the config.
func (c *Config) PrismOptions() kernel.PrismOptions {
	return kernel.PrismOptions{
		Shrink:      c.Prism.Shrink,
		Height:      c.Prism.Height,
		Bevel:       c.Prism.Bevel,
		LabelOffset: c.Prism.LabelOffset,
	}
}
