// Package storage persists finished runs and the best score.
//
// Two backends implement RunLog: a SQLite database using the pure-Go
// modernc.org/sqlite driver, and a pair of plain text files
// (highscore.txt and highscores.txt) that other tools can read directly.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxPlayerName is the longest player name kept in the run log.
const MaxPlayerName = 14

// DefaultPlayer is recorded when no name is given.
const DefaultPlayer = "Anonymous"

// RunRecord is one finished game.
type RunRecord struct {
	ID        int64
	Player    string
	Score     int
	Level     int // Speed level reached
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	LastPlayed time.Time
}

// RunLog stores finished runs. Implementations are safe for concurrent use.
type RunLog interface {
	// SaveRun appends a run. The player name is normalized and a zero
	// CreatedAt is set to the current time.
	SaveRun(run RunRecord) error
	// TopRuns returns up to limit runs ordered by score, highest first.
	TopRuns(limit int) ([]RunRecord, error)
	// HighScore returns the best score recorded, or 0.
	HighScore() (int, error)
	Stats() (Stats, error)
	// ClearRuns forgets every run and the stored high score.
	ClearRuns() error
	Close() error
}

// Backend names accepted by OpenRunLog.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// OpenRunLog opens the named backend. dbPath is used by sqlite, dir by file.
func OpenRunLog(backend, dbPath, dir string) (RunLog, error) {
	switch backend {
	case BackendSQLite, "":
		s, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendFile:
		f, err := OpenFileStore(dir)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// NormalizePlayerName makes a name safe for the run log: separators and
// line breaks are removed, surrounding space is trimmed, and the result is
// cut to MaxPlayerName characters. An empty result becomes DefaultPlayer.
func NormalizePlayerName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '|', '\n', '\r':
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if runes := []rune(name); len(runes) > MaxPlayerName {
		name = strings.TrimSpace(string(runes[:MaxPlayerName]))
	}
	if name == "" {
		return DefaultPlayer
	}
	return name
}

func prepareRun(run RunRecord) RunRecord {
	run.Player = NormalizePlayerName(run.Player)
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	return run
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
