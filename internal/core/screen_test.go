package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
	assert.Equal(t, NewRect(0, 0, 10, 10), s.Bounds())
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorRed)

	assert.Equal(t, Cell{Rune: '#', Color: ColorRed}, s.GetCell(1, 1))
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(9, 9))

	s.Clear()
	assert.Equal(t, ColorDefault, s.GetCell(1, 1).Color)
	assert.Equal(t, ' ', s.Get(1, 1))
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 'A', s.Get(1, 1))

	s.Resize(6, 6)
	assert.Equal(t, 'A', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(4, 4), "content clipped by the shrink must not reappear")
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "Hello")
	assert.Equal(t, "  Hello   ", s.Row(1))

	// Clipped at the right edge
	s.DrawText(8, 0, "xyz")
	assert.Equal(t, "        xy", s.Row(0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorYellow)
	assert.Equal(t, "    abc    ", s.Row(0))
	assert.Equal(t, ColorYellow, s.GetCell(4, 0).Color)
}

func TestScreenDrawFrame(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawFrame(NewRect(0, 0, 5, 4), 'X', ColorWhite)

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "XXXXX", lines[0])
	assert.Equal(t, "X   X", lines[1])
	assert.Equal(t, "X   X", lines[2])
	assert.Equal(t, "XXXXX", lines[3])
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	assert.Equal(t, "   ", s.Row(5))
}
