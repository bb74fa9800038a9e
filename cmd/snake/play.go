package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hunting-snake/internal/config"
	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagKeepLength bool
	flagFoodCount  int
	flagMute       bool
	flagSaveDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hunting Snake",
	Long: `Start the game in this terminal.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  L            - Save to a file
  T            - Load from a file
  Esc          - Back to the menu
  Y            - Restart (after death)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower moves (x1.3 interval)
  normal - Stock speed
  hard   - Faster moves (x0.75 interval)

Examples:
  snake play
  snake play --difficulty easy
  snake play --keep-length --food-count 6
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagKeepLength, "keep-length", true, "Keep the snake length across level-ups")
	playCmd.Flags().IntVar(&flagFoodCount, "food-count", 0, "Foods per level before the gate opens")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")
	playCmd.Flags().StringVar(&flagSaveDir, "save-dir", "", "Directory for save files (default: current directory)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fatalf("%v", err)
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	if cmd.Flags().Changed("keep-length") {
		cfg.Gameplay.KeepLength = flagKeepLength
	}
	if cmd.Flags().Changed("food-count") {
		cfg.Gameplay.FoodCount = flagFoodCount
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	// Logs must not land on the game screen.
	out, closeLog := openLogOutput(io.Discard)
	defer closeLog()
	logger := newLogger(out)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	display := tui.NewOutput(os.Stdout)
	var sounder tui.Sounder = tui.BellSounder{W: display}
	if flagMute {
		sounder = tui.NopSounder{}
	}

	shots := ""
	if dir, dirErr := config.ExpandHome(cfg.Storage.Dir); dirErr == nil {
		shots = filepath.Join(dir, "screenshots")
	}

	opts := tui.Options{
		Session:      cfg.SessionOptions(flagSeed),
		Difficulty:   cfg.Difficulty.Preset,
		BaseInterval: time.Duration(cfg.Gameplay.BaseIntervalMs) * time.Millisecond,
		Store:        store,
		Logger:       logger,
		Sounder:      sounder,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		SaveDir:       flagSaveDir,
		ScreenshotDir: shots,
		Output:        display,
	}

	logger.Info("starting game", "difficulty", cfg.Difficulty.Preset, "store", cfg.Storage.Backend)
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
