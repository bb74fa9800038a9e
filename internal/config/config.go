// Package config provides YAML-based configuration loading and difficulty
// presets for Hunting Snake.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hunting-snake/internal/snake"
	"github.com/vovakirdan/hunting-snake/internal/storage"
)

// SnakeConfig contains all configuration for the game and its collaborators.
type SnakeConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// GameplayConfig defines the simulation parameters.
type GameplayConfig struct {
	FoodCount      int  `yaml:"food_count"`       // Foods per level before the gate opens
	MaxSpeed       int  `yaml:"max_speed"`        // Speed tier that wraps back to 1
	BaseIntervalMs int  `yaml:"base_interval_ms"` // Move interval at tier 1
	StartLength    int  `yaml:"start_length"`
	ResetLength    int  `yaml:"reset_length"` // Length after a level-up unless keep_length
	KeepLength     bool `yaml:"keep_length"`
}

// DifficultyConfig scales the move interval.
type DifficultyConfig struct {
	Preset        DifficultyPreset `yaml:"preset"`
	IntervalScale float64          `yaml:"interval_scale"` // 1.0 = stock speed, lower is faster
}

// StorageConfig selects where runs and high scores are kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "sqlite" or "file"
	DBPath  string `yaml:"db_path"` // SQLite database file
	Dir     string `yaml:"dir"`     // Directory for highscore.txt and highscores.txt
}

// ServerConfig defines the SSH server settings.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Storage backends.
const (
	BackendSQLite = storage.BackendSQLite
	BackendFile   = storage.BackendFile
)

// BaseInterval returns the tier-1 move interval after difficulty scaling.
func (c SnakeConfig) BaseInterval() time.Duration {
	scale := c.Difficulty.IntervalScale
	if scale <= 0 {
		scale = 1
	}
	return time.Duration(float64(c.Gameplay.BaseIntervalMs) * scale * float64(time.Millisecond))
}

// SessionOptions converts the config into simulation options.
func (c SnakeConfig) SessionOptions(seed int64) snake.Options {
	return snake.Options{
		Seed:         seed,
		FoodCount:    c.Gameplay.FoodCount,
		MaxSpeed:     c.Gameplay.MaxSpeed,
		StartLength:  c.Gameplay.StartLength,
		ResetLength:  c.Gameplay.ResetLength,
		KeepLength:   c.Gameplay.KeepLength,
		BaseInterval: c.BaseInterval(),
	}
}

// Validate rejects values the game cannot run with.
func (c SnakeConfig) Validate() error {
	g := c.Gameplay
	switch {
	case g.FoodCount < 1 || g.FoodCount > 64:
		return fmt.Errorf("config: food_count %d out of range [1, 64]", g.FoodCount)
	case g.MaxSpeed < 1 || g.MaxSpeed > 50:
		return fmt.Errorf("config: max_speed %d out of range [1, 50]", g.MaxSpeed)
	case g.BaseIntervalMs < 10 || g.BaseIntervalMs > 5000:
		return fmt.Errorf("config: base_interval_ms %d out of range [10, 5000]", g.BaseIntervalMs)
	case g.StartLength < 1 || g.StartLength > 50:
		return fmt.Errorf("config: start_length %d out of range [1, 50]", g.StartLength)
	case g.ResetLength < 1 || g.ResetLength > 50:
		return fmt.Errorf("config: reset_length %d out of range [1, 50]", g.ResetLength)
	case c.Difficulty.IntervalScale <= 0:
		return fmt.Errorf("config: interval_scale must be positive, got %v", c.Difficulty.IntervalScale)
	}

	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("config: storage.db_path is required for the sqlite backend")
		}
	case BackendFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("config: storage.dir is required for the file backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
