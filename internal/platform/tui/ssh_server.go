package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string
	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hunting-snake/host_key.
	HostKeyPath string
	// SaveDir holds one directory of save files per SSH user.
	SaveDir string
	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
	// Game is the template for every session's front end. Store, Logger,
	// Player and Sounder are filled in per connection.
	Game Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves Hunting Snake over SSH, one game per session.
// All sessions share one run log.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  storage.RunLog
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil; the server
// does not close it.
func NewSSHServer(cfg SSHServerConfig, store storage.RunLog, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hunting-snake", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithProgramHandler(srv.programHandler, termenv.Ascii),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	return srv, nil
}

// programHandler creates a game program for each SSH session. The bell and
// the renderer share one Output over the session.
func (s *SSHServer) programHandler(sshSession ssh.Session) *tea.Program {
	m, out := s.sessionModel(sshSession)
	if out == nil {
		return nil
	}
	opts := append(bubbletea.MakeOptions(sshSession),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	return tea.NewProgram(m, opts...)
}

// sessionModel builds the game model of an SSH session. It returns a nil
// Output when the client did not request a PTY.
func (s *SSHServer) sessionModel(sshSession ssh.Session) (Model, *Output) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return Model{}, nil
	}

	user := sshSession.User()
	out := NewOutput(sshSession)
	opts := s.config.Game
	opts.Store = s.store
	opts.Player = user
	opts.Sounder = BellSounder{W: out}
	opts.Output = out
	opts.Logger = s.logger.With("user", user)
	opts.Runtime = core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.Game.Runtime.TickRate,
	}
	opts.SaveDir = s.userSaveDir(user)
	opts.Remote = true
	opts.ScreenshotDir = ""

	return NewModel(opts), out
}

// userSaveDir returns and creates the save directory of user. It returns
// "" when saves are disabled or the directory cannot be created.
func (s *SSHServer) userSaveDir(user string) string {
	if s.config.SaveDir == "" {
		return ""
	}
	name := filepath.Base(storage.NormalizePlayerName(user))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		name = storage.DefaultPlayer
	}
	dir := filepath.Join(s.config.SaveDir, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		s.logger.Warn("cannot create save directory", "dir", dir, "error", err)
		return ""
	}
	return dir
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
