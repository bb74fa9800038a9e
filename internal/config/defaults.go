package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/hunting-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Gameplay: GameplayConfig{
			FoodCount:      snake.DefaultFoodCount,
			MaxSpeed:       snake.DefaultMaxSpeed,
			BaseIntervalMs: int(snake.DefaultBaseInterval / time.Millisecond),
			StartLength:    snake.DefaultStartLength,
			ResetLength:    snake.DefaultResetLength,
			KeepLength:     true,
		},
		Difficulty: DifficultyConfig{
			Preset:        DifficultyNormal,
			IntervalScale: 1.0,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			DBPath:  "~/.hunting-snake/scores.db",
			Dir:     "~/.hunting-snake",
		},
		Server: ServerConfig{
			Addr:        ":23234",
			HostKeyPath: "~/.hunting-snake/host_key",
		},
	}
}
