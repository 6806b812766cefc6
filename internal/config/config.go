package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"wanderfeast/internal/difficulty"
)

// Config is the server's YAML configuration. Every field has a working
// default so a missing file still boots a playable instance.
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server"`
	Data       DataConfig       `yaml:"data" json:"data"`
	Map        MapConfig        `yaml:"map" json:"map"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
	Log        LogConfig        `yaml:"log" json:"log"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr" json:"addr"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds"`
}

type DataConfig struct {
	Dir     string `yaml:"dir" json:"dir"`
	Persist bool   `yaml:"persist" json:"persist"`
}

type MapConfig struct {
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Seed        int64   `yaml:"seed" json:"seed"`
	Restaurants int     `yaml:"restaurants" json:"restaurants"` // how many of the shipped restaurants to place
}

type DifficultyConfig struct {
	Preset    string             `yaml:"preset" json:"preset"`
	Overrides *difficulty.Config `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Pretty bool   `yaml:"pretty" json:"pretty"`
}

func (s *ServerConfig) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10
	}
}

func (d *DataConfig) ApplyDefaults() {
	if d.Dir == "" {
		d.Dir = "data"
	}
}

func (m *MapConfig) ApplyDefaults() {
	if m.Width == 0 {
		m.Width = 1600
	}
	if m.Height == 0 {
		m.Height = 1200
	}
	if m.Restaurants == 0 {
		m.Restaurants = 12
	}
}

func (d *DifficultyConfig) ApplyDefaults() {
	if d.Preset == "" {
		d.Preset = string(difficulty.PresetNormal)
	}
}

func (l *LogConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
}

func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Data.ApplyDefaults()
	c.Map.ApplyDefaults()
	c.Difficulty.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate rejects values the rest of the server cannot work with.
func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("map dimensions must be positive, got %gx%g", c.Map.Width, c.Map.Height)
	}
	if _, err := difficulty.ParsePreset(c.Difficulty.Preset); err != nil {
		return fmt.Errorf("difficulty preset: %w", err)
	}
	return nil
}

// DifficultySeed resolves the starting difficulty: the named preset,
// with any explicit overrides clamped on top.
func (c *Config) DifficultySeed() (difficulty.Config, error) {
	preset, err := difficulty.ParsePreset(c.Difficulty.Preset)
	if err != nil {
		return difficulty.Config{}, err
	}
	cfg := preset.Config()
	if o := c.Difficulty.Overrides; o != nil {
		if o.TravelTimeTarget != 0 {
			cfg.TravelTimeTarget = o.TravelTimeTarget
		}
		if o.MinRestaurantDistance != 0 {
			cfg.MinRestaurantDistance = o.MinRestaurantDistance
		}
		if o.RepositionPercentage != 0 {
			cfg.RepositionPercentage = o.RepositionPercentage
		}
		if o.PlayerSpeed != 0 {
			cfg.PlayerSpeed = o.PlayerSpeed
		}
		cfg = cfg.Clamp()
	}
	return cfg, nil
}

// Load reads a YAML config file. A missing file is not an error: the
// defaults come back instead.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
