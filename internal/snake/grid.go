package snake

import (
	"fmt"

	"github.com/vovakirdan/hunting-snake/internal/core"
)

// Tile is the static obstacle classification of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

func (t Tile) String() string {
	if t == TileWall {
		return "wall"
	}
	return "empty"
}

// LevelMap is an immutable level layout.
type LevelMap struct {
	ID      int        // 1-based position in the level set
	Theme   string     // Display name, e.g. "Crystal Caves"
	Color   core.Color // Theme color for obstacles
	Width   int
	Height  int
	SafeRow int // Row kept clear of obstacles for repositioning
	tiles   [][]Tile
}

// ParseLayout builds a LevelMap from text rows where '#' marks a wall.
// Width is the longest row; height is the number of rows.
func ParseLayout(id int, theme string, color core.Color, safeRow int, rows []string) *LevelMap {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]Tile, len(row))
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				tiles[y][x] = TileWall
			}
		}
	}

	return &LevelMap{
		ID:      id,
		Theme:   theme,
		Color:   color,
		Width:   width,
		Height:  len(rows),
		SafeRow: safeRow,
		tiles:   tiles,
	}
}

// TileAt returns the tile at (x, y). Coordinates outside the declared size
// or the backing rows read as TileEmpty.
func (m *LevelMap) TileAt(x, y int) Tile {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return TileEmpty
	}
	if y >= len(m.tiles) || x >= len(m.tiles[y]) {
		return TileEmpty
	}
	return m.tiles[y][x]
}

// IsWall reports whether p is an explicit wall tile.
func (m *LevelMap) IsWall(p Position) bool {
	return m.TileAt(p.X, p.Y) == TileWall
}

// Inside reports whether p lies strictly between the borders:
// 0 < x < Width and 0 < y < Height.
func (m *LevelMap) Inside(p Position) bool {
	return p.X > 0 && p.X < m.Width && p.Y > 0 && p.Y < m.Height
}

// Blocked reports whether moving the head onto p is fatal. Coordinates on
// x == 0, x == Width, y == 0 or y == Height (or beyond) block, as do walls.
func (m *LevelMap) Blocked(p Position) bool {
	return !m.Inside(p) || m.IsWall(p)
}

// WallCount returns the number of explicit wall tiles.
func (m *LevelMap) WallCount() int {
	n := 0
	for _, row := range m.tiles {
		for _, t := range row {
			if t == TileWall {
				n++
			}
		}
	}
	return n
}

// Validate checks the layout is usable: a non-trivial interior and a
// wall-free safe row.
func (m *LevelMap) Validate() error {
	if m.Width < 4 || m.Height < 4 {
		return fmt.Errorf("level %d: map %dx%d is too small", m.ID, m.Width, m.Height)
	}
	if m.SafeRow <= 0 || m.SafeRow >= m.Height {
		return fmt.Errorf("level %d: safe row %d outside interior", m.ID, m.SafeRow)
	}
	for x := 1; x < m.Width; x++ {
		if m.IsWall(Position{X: x, Y: m.SafeRow}) {
			return fmt.Errorf("level %d: safe row %d blocked at x=%d", m.ID, m.SafeRow, x)
		}
	}
	return nil
}
