package main

import (
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hunting-snake/internal/config"
	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoSaves     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hunting Snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The SSH user name is offered as the
player name, and all users share the same run log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config
    (default ~/.hunting-snake/host_key, generated on first start)

Examples:
  snake serve                           # Listen on :23234
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --store file              # Keep scores in text files

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoSaves, "no-saves", false, "Disable save files for remote players")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	out, closeLog := openLogOutput(os.Stderr)
	defer closeLog()
	logger := newLogger(out)

	addr := cfg.Server.Addr
	if flagSSHAddr != "" {
		addr = flagSSHAddr
	}
	hostKey := cfg.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	hostKey, err := config.ExpandHome(hostKey)
	if err != nil {
		fatalf("%v", err)
	}

	saveDir := ""
	if !flagNoSaves {
		if dir, dirErr := config.ExpandHome(cfg.Storage.Dir); dirErr == nil {
			saveDir = filepath.Join(dir, "saves")
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		SaveDir:     saveDir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game: tui.Options{
			Session:      cfg.SessionOptions(flagSeed),
			Difficulty:   cfg.Difficulty.Preset,
			BaseInterval: time.Duration(cfg.Gameplay.BaseIntervalMs) * time.Millisecond,
			Runtime:      core.RuntimeConfig{TickRate: flagFPS},
		},
	}, store, logger)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	logger.Info("connect with", "cmd", "ssh localhost -p "+portOf(addr))
	if err := server.ListenAndServe(); err != nil {
		fatalf("server error: %v", err)
	}
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
