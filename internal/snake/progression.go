package snake

import "github.com/vovakirdan/hunting-snake/internal/core"

// levelUp runs when the head enters the active gate. The body is always
// moved to the safe row of the next map so it never starts inside a wall.
func (s *Session) levelUp(res *StepResult) {
	s.gate = noGate

	newHigh := s.score.OnLevelUp(s.speed)

	if s.speed >= s.opts.MaxSpeed {
		s.speed = 1
	} else {
		s.speed++
	}
	s.level = LevelFor(s.speed)
	s.boardW, s.boardH = s.level.Width, s.level.Height

	n := s.opts.ResetLength
	if s.keepLength {
		n = max(s.body.Len(), MinKeptLength)
	}
	s.body = safeRun(s.level, n)

	s.moving = DirRight
	s.locked = DirLeft
	s.foods = s.spawner.GenerateFoods(s.level, s.body)

	res.add(s, EventLevelUp)
	if newHigh {
		res.add(s, EventHighScore)
	}
}

// safeRun lays out a horizontal body of length n on m's safe row.
// The tail starts at column n+2, or further left when the run would reach
// the right border. Runs longer than the interior are cut from the tail.
func safeRun(m *LevelMap, n int) *Body {
	n = min(n, m.Width-1)

	x := n + 2
	if x+n >= m.Width {
		x = max(m.Width-n-2, 1)
	}
	y := core.Clamp(m.SafeRow, 1, m.Height-2)

	return NewRun(x, y, n)
}
