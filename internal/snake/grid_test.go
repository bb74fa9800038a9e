package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hunting-snake/internal/core"
)

func TestBlockedBoundary(t *testing.T) {
	m := LevelFor(1)
	require.Equal(t, 70, m.Width)
	require.Equal(t, 20, m.Height)

	tests := []struct {
		p       Position
		blocked bool
	}{
		{Position{0, 5}, true},
		{Position{70, 5}, true},
		{Position{1, 5}, false},
		{Position{69, 5}, false},
		{Position{10, 0}, true},
		{Position{10, 20}, true},
		{Position{10, 19}, false},
		{Position{-3, 5}, true},
		{Position{10, 99}, true},
		{Position{5, 3}, true}, // wall tile
	}
	for _, tt := range tests {
		assert.Equal(t, tt.blocked, m.Blocked(tt.p), "Blocked(%v)", tt.p)
	}
}

func TestTileAtIsTotal(t *testing.T) {
	m := ParseLayout(1, "tiny", core.ColorDefault, 1, []string{
		"      ",
		"  #",
		"      ",
		"      ",
	})
	assert.Equal(t, 6, m.Width)
	assert.Equal(t, 4, m.Height)

	assert.Equal(t, TileWall, m.TileAt(2, 1))
	assert.True(t, m.IsWall(Position{2, 1}))

	// Short row reads as empty past its end.
	assert.Equal(t, TileEmpty, m.TileAt(5, 1))
	assert.Equal(t, TileEmpty, m.TileAt(-1, 0))
	assert.Equal(t, TileEmpty, m.TileAt(6, 0))
	assert.Equal(t, TileEmpty, m.TileAt(0, 4))
	assert.Equal(t, 1, m.WallCount())
}

func TestValidateRejectsBlockedSafeRow(t *testing.T) {
	m := ParseLayout(1, "bad", core.ColorDefault, 2, []string{
		"        ",
		"        ",
		"   #    ",
		"        ",
		"        ",
	})
	require.Error(t, m.Validate())

	m = ParseLayout(1, "ok", core.ColorDefault, 1, []string{
		"        ",
		"        ",
		"   #    ",
		"        ",
		"        ",
	})
	require.NoError(t, m.Validate())

	m = ParseLayout(1, "edge", core.ColorDefault, 0, []string{"    ", "    ", "    ", "    "})
	require.Error(t, m.Validate())
}
