package storage

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// File names used by FileStore.
const (
	HighScoreFile = "highscore.txt"
	RunLogFile    = "highscores.txt"
)

// runDateLayout is the dd/mm/yyyy date written to the run log.
const runDateLayout = "02/01/2006"

// FileStore keeps the best score in highscore.txt and appends one
// "name|score|level|dd/mm/yyyy" line per run to highscores.txt.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

var _ RunLog = (*FileStore)(nil)

// OpenFileStore uses dir for both files, creating it if needed.
func OpenFileStore(dir string) (*FileStore, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the files.
func (f *FileStore) Dir() string {
	return f.dir
}

// SaveRun appends the run and raises the stored high score if beaten.
func (f *FileStore) SaveRun(run RunRecord) error {
	run = prepareRun(run)

	f.mu.Lock()
	defer f.mu.Unlock()

	path := filepath.Join(f.dir, RunLogFile)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	line := fmt.Sprintf("%s|%d|%d|%s\n", run.Player, run.Score, run.Level, run.CreatedAt.Format(runDateLayout))
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return fmt.Errorf("storage: cannot append run: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("storage: cannot append run: %w", err)
	}

	high, err := f.readHighScore()
	if err != nil {
		return err
	}
	if run.Score > high {
		return f.writeHighScore(run.Score)
	}
	return nil
}

// TopRuns parses the run log and returns the best runs first. Malformed
// lines are skipped.
func (f *FileStore) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	f.mu.Lock()
	runs, err := f.readRuns()
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(runs, func(a, b RunRecord) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// HighScore returns the larger of highscore.txt and the best logged run.
func (f *FileStore) HighScore() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	high, err := f.readHighScore()
	if err != nil {
		return 0, err
	}
	runs, err := f.readRuns()
	if err != nil {
		return 0, err
	}
	for _, r := range runs {
		high = max(high, r.Score)
	}
	return high, nil
}

// Stats aggregates the run log.
func (f *FileStore) Stats() (Stats, error) {
	f.mu.Lock()
	runs, err := f.readRuns()
	f.mu.Unlock()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, r := range runs {
		stats.Runs++
		stats.TotalScore += int64(r.Score)
		stats.HighScore = max(stats.HighScore, r.Score)
		stats.BestLevel = max(stats.BestLevel, r.Level)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats, nil
}

// ClearRuns removes both files.
func (f *FileStore) ClearRuns() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, name := range []string{RunLogFile, HighScoreFile} {
		path := filepath.Join(f.dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: cannot clear %s: %w", path, err)
		}
	}
	return nil
}

// Close is a no-op; files are opened per call.
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) readHighScore() (int, error) {
	path := filepath.Join(f.dir, HighScoreFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}
	high, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		// A corrupt file is treated as no high score.
		return 0, nil
	}
	return high, nil
}

func (f *FileStore) writeHighScore(score int) error {
	path := filepath.Join(f.dir, HighScoreFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", path, err)
	}
	return nil
}

func (f *FileStore) readRuns() ([]RunRecord, error) {
	path := filepath.Join(f.dir, RunLogFile)
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	defer file.Close()

	var runs []RunRecord
	sc := bufio.NewScanner(file)
	line := 0
	for sc.Scan() {
		line++
		r, ok := parseRunLine(sc.Text())
		if !ok {
			continue
		}
		r.ID = int64(line)
		runs = append(runs, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}
	return runs, nil
}

// parseRunLine parses "name|score|level|dd/mm/yyyy". Level and date are
// optional so older two-field lines still load.
func parseRunLine(line string) (RunRecord, bool) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return RunRecord{}, false
	}
	score, err := strconv.Atoi(parts[1])
	if err != nil {
		return RunRecord{}, false
	}

	r := RunRecord{Player: parts[0], Score: score, Level: 1}
	if len(parts) > 2 {
		if lvl, err := strconv.Atoi(parts[2]); err == nil {
			r.Level = lvl
		}
	}
	if len(parts) > 3 {
		if t, err := time.ParseInLocation(runDateLayout, parts[3], time.Local); err == nil {
			r.CreatedAt = t
		}
	}
	return r, true
}
