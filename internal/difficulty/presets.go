package difficulty

import (
	"fmt"
	"strings"
)

// Preset names a bundled difficulty configuration.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetExpert Preset = "expert"
)

// Presets lists every known preset in gameplay order.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard, PresetExpert}

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PresetEasy, PresetNormal, PresetHard, PresetExpert:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty preset %q", s)
}

// Config returns the preset's full configuration.
func (p Preset) Config() Config {
	switch p {
	case PresetEasy:
		return Easy()
	case PresetHard:
		return Hard()
	case PresetExpert:
		return Expert()
	default:
		return Normal()
	}
}

// Default returns the configuration a fresh store starts with.
func Default() Config {
	return Normal()
}

// Normal is the baseline pacing.
func Normal() Config {
	return Config{
		TravelTimeTarget:      60,
		MinRestaurantDistance: 200,
		RepositionPercentage:  0.1,
		PlayerSpeed:           100,
	}
}

// Easy keeps restaurants close and the player fast.
func Easy() Config {
	cfg := Normal()
	cfg.TravelTimeTarget = 45
	cfg.MinRestaurantDistance = 150
	cfg.RepositionPercentage = 0.05
	cfg.PlayerSpeed = 140
	return cfg
}

// Hard spreads the map out and slows the player down.
func Hard() Config {
	cfg := Normal()
	cfg.TravelTimeTarget = 120
	cfg.MinRestaurantDistance = 300
	cfg.RepositionPercentage = 0.25
	cfg.PlayerSpeed = 80
	return cfg
}

// Expert is the widest spread the ranges allow while staying playable.
func Expert() Config {
	cfg := Normal()
	cfg.TravelTimeTarget = 180
	cfg.MinRestaurantDistance = 400
	cfg.RepositionPercentage = 0.4
	cfg.PlayerSpeed = 60
	return cfg
}
