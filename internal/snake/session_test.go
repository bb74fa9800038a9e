package snake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRunning starts a session and moves the food out of the snake's path.
func newRunning(t *testing.T, opts Options) *Session {
	t.Helper()
	s := NewSession(opts)
	s.Start()
	require.Equal(t, StateRunning, s.State())
	s.foods = FoodSet{
		Items:   []Position{{30, 10}, {31, 10}, {32, 10}, {33, 10}},
		Visible: true,
	}
	return s
}

func TestStartLayout(t *testing.T) {
	s := NewSession(Options{Seed: 1})
	assert.Equal(t, StateIdle, s.State())

	s.Start()
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, []Position{{10, 5}, {11, 5}, {12, 5}, {13, 5}, {14, 5}, {15, 5}}, s.Segments())
	assert.Equal(t, DirRight, s.Moving())
	assert.Equal(t, DirLeft, s.Locked())
	assert.Equal(t, 1, s.SpeedLevel())
	assert.Equal(t, "Peaceful Garden", s.Level().Theme)
	assert.False(t, s.Gate().Active)
	assert.Equal(t, Position{-1, -1}, s.Gate().Pos)

	foods := s.Foods()
	assert.Len(t, foods.Items, DefaultFoodCount)
	assert.True(t, foods.Visible)
}

func TestStepMoves(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})

	res := s.Step(DirRight)
	assert.Empty(t, res.Events)
	assert.Equal(t, []Position{{11, 5}, {12, 5}, {13, 5}, {14, 5}, {15, 5}, {16, 5}}, s.Segments())
	assert.Equal(t, DirLeft, s.Locked())
	assert.Equal(t, DirRight, s.Moving())

	s.Step(DirDown)
	assert.Equal(t, Position{16, 6}, s.Head())
	assert.Equal(t, DirUp, s.Locked())
	assert.Equal(t, DirDown, s.Moving())
}

func TestStepEats(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Items[0] = Position{16, 5}

	res := s.Step(DirRight)
	require.True(t, res.Has(EventEat))
	assert.Equal(t, 7, s.Length())
	assert.Equal(t, Position{10, 5}, s.Segments()[0], "tail kept on eat")
	assert.Equal(t, 1, s.Foods().Index)
	assert.Equal(t, 10, s.Score().Current)
	assert.False(t, s.Gate().Active)
}

func TestEatingLastFoodOpensGate(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Items[3] = Position{16, 5}
	s.foods.Index = 3

	res := s.Step(DirRight)
	require.True(t, res.Has(EventEat))

	gate := s.Gate()
	assert.True(t, gate.Active)
	assert.False(t, s.Foods().Visible)
	assert.Equal(t, 3, s.Foods().Index)
	_, ok := s.Foods().Active()
	assert.False(t, ok)
	assert.NotContains(t, s.Segments(), gate.Pos)
	assert.Contains(t, s.HUD(), "Gate: ON")
}

func TestInvisibleFoodIsNotEaten(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Items[0] = Position{16, 5}
	s.foods.Visible = false

	res := s.Step(DirRight)
	assert.False(t, res.Has(EventEat))
	assert.Equal(t, 6, s.Length())
}

func TestGateAdvancesLevel(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Visible = false
	s.gate = Gate{Pos: Position{16, 5}, Active: true}

	res := s.Step(DirRight)
	require.True(t, res.Has(EventLevelUp))

	assert.Equal(t, 2, s.SpeedLevel())
	assert.Same(t, LevelFor(2), s.Level())
	assert.Equal(t, 50, s.Score().Current)
	assert.False(t, s.Gate().Active)
	assert.Equal(t, Position{-1, -1}, s.Gate().Pos)

	// Reset length 6 at column 6+2.
	assert.Equal(t, []Position{{8, 5}, {9, 5}, {10, 5}, {11, 5}, {12, 5}, {13, 5}}, s.Segments())
	assert.Equal(t, DirRight, s.Moving())
	assert.Equal(t, DirLeft, s.Locked())

	foods := s.Foods()
	assert.True(t, foods.Visible)
	assert.Equal(t, 0, foods.Index)
	assert.Len(t, foods.Items, DefaultFoodCount)
}

func TestSpeedWrapsAtMax(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.speed = s.Options().MaxSpeed

	var res StepResult
	s.levelUp(&res)
	assert.Equal(t, 1, s.SpeedLevel())
	assert.Same(t, LevelFor(1), s.Level())
	assert.Equal(t, DefaultMaxSpeed*LevelUpPoints, s.Score().Current)
}

func TestKeepLength(t *testing.T) {
	s := newRunning(t, Options{Seed: 1, KeepLength: true})
	s.body = NewRun(20, 10, 10)

	var res StepResult
	s.levelUp(&res)
	require.Equal(t, 10, s.Length())
	assert.Equal(t, Position{12, 5}, s.Segments()[0])

	s.body = NewRun(20, 10, 2)
	s.levelUp(&res)
	assert.Equal(t, MinKeptLength, s.Length())

	s.SetKeepLength(false)
	s.body = NewRun(20, 10, 12)
	s.levelUp(&res)
	assert.Equal(t, DefaultResetLength, s.Length())
}

func TestLevelUpPlacementIsSafe(t *testing.T) {
	lengths := []int{1, 2, 3, 6, 20, 33, 34, 40, 66, 67, 68, 69, 70, 150}

	for _, n := range lengths {
		s := newRunning(t, Options{Seed: 3, KeepLength: true})
		for lvl := 1; lvl <= s.Options().MaxSpeed; lvl++ {
			segs := make([]Position, n)
			for i := range segs {
				segs[i] = Position{X: i, Y: 0}
			}
			s.body = NewBody(segs)

			var res StepResult
			s.levelUp(&res)

			m := s.Level()
			assert.LessOrEqual(t, s.Length(), m.Width-1)
			for _, p := range s.Segments() {
				assert.True(t, m.Inside(p), "len %d level %d: %v outside", n, s.SpeedLevel(), p)
				assert.False(t, m.IsWall(p), "len %d level %d: %v on wall", n, s.SpeedLevel(), p)
			}
			for _, f := range s.Foods().Items {
				assert.NotContains(t, s.Segments(), f)
			}
		}
	}
}

func TestWallCollisionKillsWithoutMoving(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewRun(1, 1, 3)
	before := s.Segments()

	res := s.Step(DirUp)
	require.True(t, res.Has(EventDeath))
	assert.Equal(t, StateDead, s.State())
	assert.Equal(t, before, s.Segments())

	assert.Empty(t, s.Step(DirRight).Events, "dead sessions do not step")
	assert.Empty(t, s.Tick().Events)
}

func TestObstacleCollision(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewRun(1, 3, 4) // head (4,3), wall at (5,3)

	res := s.Step(DirRight)
	assert.True(t, res.Has(EventDeath))
}

func TestSelfCollision(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewBody([]Position{{31, 10}, {31, 11}, {31, 12}, {30, 12}, {30, 11}})
	s.moving = DirUp

	res := s.Step(DirRight)
	assert.True(t, res.Has(EventDeath))
}

func TestTailIsNotVacatedBeforeCollision(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewBody([]Position{{20, 10}, {21, 10}, {21, 11}, {20, 11}})
	s.moving = DirLeft

	res := s.Step(DirUp)
	assert.True(t, res.Has(EventDeath))
}

func TestTurnRejectsReversal(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})

	assert.False(t, s.Turn(DirLeft))
	assert.Equal(t, DirRight, s.Moving())

	assert.True(t, s.Turn(DirUp))
	assert.Equal(t, DirUp, s.Moving())
}

func TestTurnOncePerTick(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})

	require.True(t, s.Turn(DirDown))
	assert.False(t, s.Turn(DirLeft), "second change in the same tick")
	assert.Equal(t, DirDown, s.Moving())

	s.Tick()
	assert.Equal(t, Position{15, 6}, s.Head())
	assert.True(t, s.Turn(DirLeft))
}

func TestTurnSameDirectionIsNoop(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})

	assert.False(t, s.Turn(DirRight))
	assert.True(t, s.Turn(DirUp), "no-op must not use up the tick's change")
}

func TestShortBodyMayReverse(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewRun(20, 10, 2)

	assert.True(t, s.Turn(DirLeft))
}

func TestTurnIgnoredWhenNotRunning(t *testing.T) {
	s := NewSession(Options{Seed: 1})
	assert.False(t, s.Turn(DirUp))
	assert.False(t, s.Turn(Direction(12)))
}

func TestLockedNotUpdatedForShortBody(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.body = NewRun(20, 10, 2)
	s.locked = DirLeft

	s.Step(DirDown)
	assert.Equal(t, DirLeft, s.Locked())
	assert.Equal(t, DirDown, s.Moving())
}

func TestHighScoreEvent(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.SetHighScore(15)
	s.foods.Items[0] = Position{16, 5}
	s.foods.Items[1] = Position{17, 5}

	res := s.Step(DirRight)
	assert.False(t, res.Has(EventHighScore))

	res = s.Step(DirRight)
	assert.True(t, res.Has(EventHighScore))
	assert.Equal(t, 20, s.Score().High)

	s.SetHighScore(5)
	assert.Equal(t, 20, s.Score().High, "lower seed ignored")
}

func TestStartKeepsHighScore(t *testing.T) {
	s := newRunning(t, Options{Seed: 1})
	s.foods.Items[0] = Position{16, 5}
	s.Step(DirRight)

	s.Start()
	assert.Equal(t, 0, s.Score().Current)
	assert.Equal(t, 10, s.Score().High)
}

func TestMoveInterval(t *testing.T) {
	s := NewSession(Options{Seed: 1})
	assert.Equal(t, 220*time.Millisecond, s.MoveInterval())

	s.speed = 2
	assert.InDelta(t, float64(220*time.Millisecond)/1.4, float64(s.MoveInterval()), 1)

	s.speed = DefaultMaxSpeed
	top := s.MoveInterval()
	s.speed = DefaultMaxSpeed + 4
	assert.Equal(t, top, s.MoveInterval(), "tier is capped")
}

func TestSetBaseInterval(t *testing.T) {
	s := NewSession(Options{Seed: 1})
	s.SetBaseInterval(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, s.MoveInterval())

	s.SetBaseInterval(0)
	assert.Equal(t, 100*time.Millisecond, s.MoveInterval(), "zero is ignored")
}

func TestResume(t *testing.T) {
	s := NewSession(Options{Seed: 1})
	s.Resume()
	assert.Equal(t, StateRunning, s.State())

	s.state = StateDead
	s.Resume()
	assert.Equal(t, StateDead, s.State())
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(Options{Seed: 12345})
		s.Start()
		turns := map[int]Direction{5: DirDown, 9: DirRight, 30: DirUp, 34: DirRight, 50: DirDown}
		for i := 0; i < 200 && s.State() == StateRunning; i++ {
			if d, ok := turns[i]; ok {
				s.Turn(d)
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	assert.Equal(t, run(), run())
}
