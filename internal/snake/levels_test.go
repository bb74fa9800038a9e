package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelCount(t *testing.T) {
	assert.Equal(t, 5, LevelCount())
	assert.Len(t, Levels(), LevelCount())
}

func TestAllLevelsValid(t *testing.T) {
	themes := map[string]bool{}
	for i, m := range Levels() {
		require.NoError(t, m.Validate(), "level %d", i+1)
		assert.Equal(t, i+1, m.ID)
		assert.Equal(t, 70, m.Width)
		assert.Equal(t, 20, m.Height)
		assert.Equal(t, 5, m.SafeRow)
		assert.NotEmpty(t, m.Theme)
		assert.Positive(t, m.WallCount(), "level %d has no obstacles", i+1)
		themes[m.Theme] = true
	}
	assert.Len(t, themes, LevelCount(), "themes should be distinct")
}

func TestLevelsGetHarder(t *testing.T) {
	levels := Levels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].WallCount(), levels[i-1].WallCount())
	}
}

func TestLevelFor(t *testing.T) {
	levels := Levels()
	assert.Same(t, levels[0], LevelFor(1))
	assert.Same(t, levels[4], LevelFor(5))
	assert.Same(t, levels[0], LevelFor(6))
	assert.Same(t, levels[2], LevelFor(8))
	assert.Same(t, levels[0], LevelFor(0))
	assert.Same(t, LevelFor(3), LevelFor(3), "level set is parsed once")
}
