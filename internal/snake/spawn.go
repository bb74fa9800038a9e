package snake

import "math/rand"

// FoodSet is one batch of food. Only Items[Index] is eatable, and only
// while Visible.
type FoodSet struct {
	Items   []Position
	Index   int
	Visible bool
}

// Active returns the eatable food position, if any.
func (f FoodSet) Active() (Position, bool) {
	if !f.Visible || f.Index < 0 || f.Index >= len(f.Items) {
		return Position{}, false
	}
	return f.Items[f.Index], true
}

// Last reports whether the active food is the final one of the batch.
func (f FoodSet) Last() bool {
	return f.Index == len(f.Items)-1
}

// Gate is the level exit. An inactive gate sits at (-1, -1).
type Gate struct {
	Pos    Position
	Active bool
}

var noGate = Gate{Pos: Position{X: -1, Y: -1}}

// Spawner places food and gates on free interior cells using a seeded RNG.
type Spawner struct {
	rng       *rand.Rand
	foodCount int
}

// NewSpawner creates a spawner producing batches of foodCount items.
func NewSpawner(rng *rand.Rand, foodCount int) *Spawner {
	if foodCount < 1 {
		foodCount = 1
	}
	return &Spawner{rng: rng, foodCount: foodCount}
}

// FoodCount returns the batch size.
func (s *Spawner) FoodCount() int {
	return s.foodCount
}

// GenerateFoods draws a fresh batch of distinct positions, none on the body
// or a wall. Each draw is x in [1, width-1], y in [1, height-1], rejected
// and redrawn until it is free.
func (s *Spawner) GenerateFoods(m *LevelMap, body *Body) FoodSet {
	items := make([]Position, 0, s.foodCount)
	for len(items) < s.foodCount {
		p := Position{
			X: s.rng.Intn(m.Width-1) + 1,
			Y: s.rng.Intn(m.Height-1) + 1,
		}
		if body.Contains(p) || m.IsWall(p) || containsPos(items, p) {
			continue
		}
		items = append(items, p)
	}
	return FoodSet{Items: items, Index: 0, Visible: true}
}

// SpawnGate picks a uniform edge of the interior, then a uniform cell along
// it, retrying until the cell is off the body and not a wall.
func (s *Spawner) SpawnGate(m *LevelMap, body *Body) Gate {
	for {
		rx := s.rng.Intn(m.Width-1) + 1
		ry := s.rng.Intn(m.Height-1) + 1

		var p Position
		switch s.rng.Intn(4) {
		case 0:
			p = Position{X: rx, Y: 1}
		case 1:
			p = Position{X: rx, Y: m.Height - 1}
		case 2:
			p = Position{X: 1, Y: ry}
		default:
			p = Position{X: m.Width - 1, Y: ry}
		}

		if body.Contains(p) || m.IsWall(p) {
			continue
		}
		return Gate{Pos: p, Active: true}
	}
}

func containsPos(ps []Position, p Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
