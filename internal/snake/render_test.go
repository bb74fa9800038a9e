package snake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hunting-snake/internal/core"
)

func TestRender(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})

	w, h := s.ScreenSize()
	require.Equal(t, 71, w)
	require.Equal(t, 22, h)

	screen := core.NewScreen(w, h)
	s.Render(screen)

	assert.Equal(t, GlyphBorder, screen.Get(0, 0))
	assert.Equal(t, GlyphBorder, screen.Get(70, 20))
	assert.Equal(t, GlyphWall, screen.Get(5, 3))
	assert.Equal(t, s.Level().Color, screen.GetCell(5, 3).Color)

	assert.Equal(t, GlyphSnake, screen.Get(10, 5))
	assert.Equal(t, GlyphSnake, screen.Get(15, 5))
	assert.Equal(t, core.ColorBrightGreen, screen.GetCell(15, 5).Color)

	assert.Equal(t, GlyphFood, screen.Get(30, 10))
	assert.Equal(t, ' ', screen.Get(31, 10), "only the active food is drawn")

	hud := strings.TrimRight(screen.Row(21), " ")
	assert.Equal(t, "Level: 1  Length: 6  Score: 0  High: 0  Gate: OFF", hud)
}

func TestRenderGate(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Visible = false
	s.gate = Gate{Pos: Position{1, 9}, Active: true}

	screen := core.NewScreen(s.ScreenSize())
	s.Render(screen)

	assert.Equal(t, GlyphGate, screen.Get(1, 9))
	assert.Equal(t, ' ', screen.Get(30, 10))
}
