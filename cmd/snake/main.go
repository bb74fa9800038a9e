// snake is Hunting Snake: a terminal snake game with walled levels, food
// batches and an exit gate.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake scores             - Show the best runs
//	snake levels             - List the level maps
//	snake inspect <file>     - Describe a save file
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Game config YAML
//	--db <path>         - SQLite database path (default: ~/.hunting-snake/scores.db)
//	--store <backend>   - Run log backend: sqlite or file
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hunting-snake/internal/config"
	"github.com/vovakirdan/hunting-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagStore    string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Hunting Snake - a walled-level snake game for the terminal",
	Long: `Hunting Snake is a terminal snake game. Eat every food of a batch to
open the gate, then slip through it to reach the next, faster level.

Available commands:
  play     - Play in this terminal
  scores   - View the best runs
  levels   - List the level maps
  inspect  - Describe a save file
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --difficulty hard --keep-length
  snake scores --limit 20
  snake inspect snake.sav
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Run log backend: sqlite or file (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatalf prints an error and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// openLogOutput returns the --log-file writer, or fallback when unset.
// The returned closer is never nil.
func openLogOutput(fallback io.Writer) (io.Writer, func()) {
	if flagLogFile == "" {
		return fallback, func() {}
	}
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		fatalf("%v", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fatalf("cannot open log file: %v", err)
	}
	return f, func() { f.Close() }
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) config.SnakeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if f := cmd.Flag("db"); f != nil && f.Changed {
		cfg.Storage.DBPath = flagDBPath
	}
	if f := cmd.Flag("store"); f != nil && f.Changed {
		cfg.Storage.Backend = flagStore
	}
	return cfg
}

// openStore opens the configured run log.
func openStore(cfg config.SnakeConfig) (storage.RunLog, error) {
	return storage.OpenRunLog(cfg.Storage.Backend, cfg.Storage.DBPath, cfg.Storage.Dir)
}
