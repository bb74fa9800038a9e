package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLineFormat(t *testing.T) {
	dir := t.TempDir()
	fs, err := OpenFileStore(dir)
	require.NoError(t, err)

	day := time.Date(2025, 7, 4, 9, 30, 0, 0, time.Local)
	require.NoError(t, fs.SaveRun(RunRecord{Player: "Linh", Score: 250, Level: 3, CreatedAt: day}))

	data, err := os.ReadFile(filepath.Join(dir, RunLogFile))
	require.NoError(t, err)
	assert.Equal(t, "Linh|250|3|04/07/2025\n", string(data))

	high, err := os.ReadFile(filepath.Join(dir, HighScoreFile))
	require.NoError(t, err)
	assert.Equal(t, "250", strings.TrimSpace(string(high)))
}

func TestFileStoreHighScoreOnlyRises(t *testing.T) {
	dir := t.TempDir()
	fs, err := OpenFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.SaveRun(RunRecord{Player: "a", Score: 300, Level: 1}))
	require.NoError(t, fs.SaveRun(RunRecord{Player: "b", Score: 100, Level: 1}))

	high, err := os.ReadFile(filepath.Join(dir, HighScoreFile))
	require.NoError(t, err)
	assert.Equal(t, "300", strings.TrimSpace(string(high)))
}

func TestFileStoreReadsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	log := strings.Join([]string{
		"Minh|80|2|01/02/2024",
		"garbage line",
		"Old|500",
		"Bad|notanumber|1|01/01/2024",
		"",
		"Lan|120|3|15/06/2024",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, RunLogFile), []byte(log), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, HighScoreFile), []byte("999\n"), 0o644))

	fs, err := OpenFileStore(dir)
	require.NoError(t, err)

	runs, err := fs.TopRuns(15)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "Old", runs[0].Player)
	assert.Equal(t, 1, runs[0].Level)
	assert.Equal(t, "Lan", runs[1].Player)
	assert.Equal(t, time.June, runs[1].CreatedAt.Month())
	assert.Equal(t, int64(6), runs[1].ID, "ID is the line number")

	high, err := fs.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 999, high, "scalar file wins when higher")
}

func TestFileStoreCorruptHighScore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, HighScoreFile), []byte("lots"), 0o644))

	fs, err := OpenFileStore(dir)
	require.NoError(t, err)

	high, err := fs.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	require.NoError(t, fs.SaveRun(RunRecord{Player: "a", Score: 10, Level: 1}))
	high, err = fs.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 10, high)
}
