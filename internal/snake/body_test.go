package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	b := NewRun(10, 5, 6)
	require.Equal(t, 6, b.Len())
	assert.Equal(t, Position{10, 5}, b.Segments()[0])
	assert.Equal(t, Position{15, 5}, b.Head())
	assert.Equal(t, Position{16, 5}, b.PeekNextHead(DirRight))
	assert.Equal(t, 6, b.Len(), "peek must not mutate")
}

func TestAdvance(t *testing.T) {
	b := NewRun(10, 5, 3)

	b.Advance(Position{13, 5}, false)
	assert.Equal(t, []Position{{11, 5}, {12, 5}, {13, 5}}, b.Segments())

	b.Advance(Position{13, 6}, true)
	assert.Equal(t, []Position{{11, 5}, {12, 5}, {13, 5}, {13, 6}}, b.Segments())
}

func TestHitsSelf(t *testing.T) {
	// Square: tail (20,10) -> head (20,11).
	b := NewBody([]Position{{20, 10}, {21, 10}, {21, 11}, {20, 11}})

	assert.True(t, b.HitsSelf(Position{20, 10}), "tail still counts")
	assert.True(t, b.HitsSelf(Position{21, 11}))
	assert.False(t, b.HitsSelf(Position{20, 11}), "current head is excluded")
	assert.False(t, b.HitsSelf(Position{19, 11}))

	single := NewBody([]Position{{1, 1}})
	assert.False(t, single.HitsSelf(Position{1, 1}))
}

func TestSegmentsIsACopy(t *testing.T) {
	b := NewRun(1, 1, 2)
	segs := b.Segments()
	segs[0] = Position{99, 99}
	assert.Equal(t, Position{1, 1}, b.Segments()[0])
}
