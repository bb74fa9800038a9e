package snake

// Points awarded per speed level.
const (
	EatPoints     = 10
	LevelUpPoints = 50
)

// Score tracks the running score and the best score seen.
type Score struct {
	Current int
	High    int

	// set once Current has passed the High it started the game with
	beaten bool
}

// OnEat awards level*EatPoints. It reports true at the moment the current
// score first passes the high score.
func (s *Score) OnEat(level int) bool {
	return s.add(level * EatPoints)
}

// OnLevelUp awards level*LevelUpPoints, reporting a new high like OnEat.
func (s *Score) OnLevelUp(level int) bool {
	return s.add(level * LevelUpPoints)
}

// Reset clears the current score and keeps the high score.
func (s *Score) Reset() {
	s.Current = 0
	s.beaten = false
}

// IsHigh reports whether a positive current score equals the high score.
func (s Score) IsHigh() bool {
	return s.Current > 0 && s.Current == s.High
}

func (s *Score) add(points int) bool {
	s.Current += points
	if s.Current <= s.High {
		return false
	}
	s.High = s.Current
	if s.beaten {
		return false
	}
	s.beaten = true
	return true
}
