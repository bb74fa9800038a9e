package snake

import (
	"fmt"

	"github.com/vovakirdan/hunting-snake/internal/core"
)

// Glyphs used on the board.
const (
	GlyphBorder = 'X'
	GlyphWall   = '#'
	GlyphSnake  = 'O'
	GlyphFood   = '@'
	GlyphGate   = 'G'
)

// ScreenSize returns the buffer size Render needs: the board with its
// border plus one HUD row.
func (s *Session) ScreenSize() (w, h int) {
	return s.boardW + 1, s.boardH + 2
}

// HUD returns the status line shown under the board.
func (s *Session) HUD() string {
	gate := "OFF"
	if s.gate.Active {
		gate = "ON"
	}
	return fmt.Sprintf("Level: %d  Length: %d  Score: %d  High: %d  Gate: %s",
		s.speed, s.body.Len(), s.score.Current, s.score.High, gate)
}

// Render draws the board, walls, food, gate, snake and HUD into dst.
// dst is cleared first; anything outside its bounds is clipped.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	w, h := s.boardW, s.boardH
	dst.DrawFrame(core.NewRect(0, 0, w+1, h+1), GlyphBorder, core.ColorWhite)

	for y := 1; y < h; y++ {
		for x := 1; x < w; x++ {
			if s.level.TileAt(x, y) == TileWall {
				dst.SetColored(x, y, GlyphWall, s.level.Color)
			}
		}
	}

	if food, ok := s.foods.Active(); ok {
		dst.SetColored(food.X, food.Y, GlyphFood, core.ColorYellow)
	}
	if s.gate.Active {
		dst.SetColored(s.gate.Pos.X, s.gate.Pos.Y, GlyphGate, core.ColorBrightCyan)
	}

	color := core.ColorGreen
	if s.state == StateDead {
		color = core.ColorRed
	}
	segs := s.body.segs
	for i, p := range segs {
		c := color
		if i == len(segs)-1 && s.state != StateDead {
			c = core.ColorBrightGreen
		}
		dst.SetColored(p.X, p.Y, GlyphSnake, c)
	}

	dst.DrawTextColored(0, h+1, s.HUD(), core.ColorDefault)
}
