package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays environment variables onto a loaded config.
// Variables win over file values so deployments can tweak a shared
// config file without editing it.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("WANDERFEAST_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("WANDERFEAST_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("WANDERFEAST_PERSIST"); v != "" {
		c.Data.Persist = v == "1" || v == "true"
	}
	if v := getEnvFloat("WANDERFEAST_MAP_WIDTH"); v > 0 {
		c.Map.Width = v
	}
	if v := getEnvFloat("WANDERFEAST_MAP_HEIGHT"); v > 0 {
		c.Map.Height = v
	}
	if v := getEnvInt64("WANDERFEAST_MAP_SEED"); v != 0 {
		c.Map.Seed = v
	}
	if v := os.Getenv("WANDERFEAST_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DIFFICULTY"); v != "" {
		c.Difficulty.Preset = v
	}
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}

func getEnvInt64(key string) int64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return num
}
