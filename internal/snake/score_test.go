package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAwards(t *testing.T) {
	var s Score
	s.OnEat(1)
	assert.Equal(t, 10, s.Current)
	s.OnEat(3)
	assert.Equal(t, 40, s.Current)
	s.OnLevelUp(2)
	assert.Equal(t, 140, s.Current)
	assert.Equal(t, 140, s.High)
}

func TestScoreReportsNewHighOnce(t *testing.T) {
	s := Score{High: 25}

	assert.False(t, s.OnEat(1)) // 10
	assert.False(t, s.OnEat(1)) // 20
	assert.True(t, s.OnEat(1))  // 30 passes 25
	assert.False(t, s.OnEat(1), "already reported this game")
	assert.Equal(t, 40, s.High)
	assert.True(t, s.IsHigh())

	s.Reset()
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 40, s.High, "high survives reset")
	assert.False(t, s.IsHigh())

	assert.True(t, s.OnLevelUp(1)) // 50 passes 40
	assert.Equal(t, 50, s.High)
}
