package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the session control state. The integer values are part of the
// save format.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDead:
		return "dead"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	return s >= StateIdle && s <= StateDead
}

// Defaults for Options fields left at zero.
const (
	DefaultFoodCount    = 4
	DefaultMaxSpeed     = 8
	DefaultStartLength  = 6
	DefaultResetLength  = 6
	DefaultBaseInterval = 220 * time.Millisecond

	// MinKeptLength is the shortest body carried across a level-up when
	// length is preserved.
	MinKeptLength = 3

	startX = 10
)

// Options configures a session.
type Options struct {
	Seed         int64         // RNG seed for food and gate placement
	FoodCount    int           // Foods per batch
	MaxSpeed     int           // Highest speed tier before wrapping to 1
	StartLength  int           // Body length on a new game
	ResetLength  int           // Body length after a level-up when KeepLength is off
	KeepLength   bool          // Carry the body length across level-ups
	BaseInterval time.Duration // Move interval at speed tier 1
}

// DefaultOptions returns the stock game settings.
func DefaultOptions() Options {
	return Options{
		FoodCount:    DefaultFoodCount,
		MaxSpeed:     DefaultMaxSpeed,
		StartLength:  DefaultStartLength,
		ResetLength:  DefaultResetLength,
		BaseInterval: DefaultBaseInterval,
	}
}

func (o Options) withDefaults() Options {
	if o.FoodCount <= 0 {
		o.FoodCount = DefaultFoodCount
	}
	if o.MaxSpeed <= 0 {
		o.MaxSpeed = DefaultMaxSpeed
	}
	if o.StartLength <= 0 {
		o.StartLength = DefaultStartLength
	}
	if o.ResetLength <= 0 {
		o.ResetLength = DefaultResetLength
	}
	if o.BaseInterval <= 0 {
		o.BaseInterval = DefaultBaseInterval
	}
	return o
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventEat EventKind = iota
	EventLevelUp
	EventDeath
	EventHighScore
)

func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventLevelUp:
		return "levelup"
	case EventDeath:
		return "death"
	case EventHighScore:
		return "highscore"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k >= EventEat && k <= EventHighScore
}

// Event is one occurrence, stamped with the speed level and score at the
// time it fired.
type Event struct {
	Kind       EventKind
	SpeedLevel int
	Score      int
}

// StepResult lists the events raised by a single step, in order.
type StepResult struct {
	Events []Event
}

// Has reports whether an event of kind k fired.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func (r *StepResult) add(s *Session, k EventKind) {
	r.Events = append(r.Events, Event{Kind: k, SpeedLevel: s.speed, Score: s.score.Current})
}

// Session holds the full mutable game state. It is not safe for concurrent
// use; one goroutine drives it.
type Session struct {
	opts    Options
	rng     *rand.Rand
	spawner *Spawner

	level  *LevelMap
	boardW int
	boardH int

	body             *Body
	moving           Direction
	locked           Direction
	directionChanged bool
	speed            int
	state            State
	keepLength       bool

	foods FoodSet
	gate  Gate
	score Score
}

// NewSession creates an idle session laid out as a fresh game.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Session{
		opts:       opts,
		rng:        rng,
		spawner:    NewSpawner(rng, opts.FoodCount),
		keepLength: opts.KeepLength,
	}
	s.reset()
	return s
}

// Start begins a new game and enters StateRunning. The high score is kept.
func (s *Session) Start() {
	s.reset()
	s.state = StateRunning
}

// Resume puts a loaded idle session back into play. Dead sessions stay dead.
func (s *Session) Resume() {
	if s.state == StateIdle {
		s.state = StateRunning
	}
}

// Stop returns the session to StateIdle without touching the board.
func (s *Session) Stop() {
	s.state = StateIdle
}

func (s *Session) reset() {
	s.moving = DirRight
	s.locked = DirLeft
	s.directionChanged = false
	s.speed = 1
	s.gate = noGate
	s.score.Reset()
	s.state = StateIdle

	s.level = LevelFor(s.speed)
	s.boardW, s.boardH = s.level.Width, s.level.Height

	n := s.opts.StartLength
	x, y := startX, s.level.SafeRow
	if x+n >= s.level.Width {
		x = max(s.level.Width-n-2, 1)
	}
	n = min(n, s.level.Width-x)
	s.body = NewRun(x, y, n)
	s.foods = s.spawner.GenerateFoods(s.level, s.body)
}

// Turn requests a direction change for the next step. Bodies of length two
// or less accept any direction. Longer bodies reject a reversal of the
// current heading. One change is accepted per tick; a request equal to the
// current heading is a no-op and does not use it up.
func (s *Session) Turn(d Direction) bool {
	if s.state != StateRunning || !d.Valid() {
		return false
	}
	if d == s.moving || s.directionChanged {
		return false
	}
	if s.body.Len() > 2 && Opposite(d, s.moving) {
		return false
	}
	s.moving = d
	s.directionChanged = true
	return true
}

// Tick opens a new tick boundary and steps once in the current heading.
func (s *Session) Tick() StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}
	s.directionChanged = false
	return s.Step(s.moving)
}

// Step moves the snake one cell in dir. A wall or body hit ends the game
// and leaves the board as it was.
func (s *Session) Step(dir Direction) StepResult {
	var res StepResult
	if s.state != StateRunning {
		return res
	}
	if !dir.Valid() {
		dir = s.moving
	}

	next := s.body.PeekNextHead(dir)
	if s.level.Blocked(next) || s.body.HitsSelf(next) {
		s.state = StateDead
		res.add(s, EventDeath)
		return res
	}

	food, visible := s.foods.Active()
	eat := visible && next == food
	hitGate := s.gate.Active && next == s.gate.Pos

	s.body.Advance(next, eat)
	if eat {
		s.eat(&res)
	}

	if s.body.Len() > 2 {
		s.locked = dir.Opposite()
	}
	s.moving = dir

	if hitGate {
		s.levelUp(&res)
	}
	return res
}

func (s *Session) eat(res *StepResult) {
	newHigh := s.score.OnEat(s.speed)
	res.add(s, EventEat)
	if newHigh {
		res.add(s, EventHighScore)
	}

	if s.foods.Last() {
		s.gate = s.spawner.SpawnGate(s.level, s.body)
		s.foods.Visible = false
		return
	}
	s.foods.Index++
}

// MoveInterval returns the time between steps at the current speed tier:
// base / (1 + 0.4*(tier-1)), with tier capped at MaxSpeed.
func (s *Session) MoveInterval() time.Duration {
	return moveInterval(s.opts.BaseInterval, s.speed, s.opts.MaxSpeed)
}

func moveInterval(base time.Duration, speed, maxSpeed int) time.Duration {
	lvl := min(max(speed, 1), maxSpeed)
	accel := 1.0 + 0.4*float64(lvl-1)
	return time.Duration(float64(base) / accel)
}

// SetHighScore seeds the high score, typically from the run store.
// Lower values than the current high are ignored.
func (s *Session) SetHighScore(high int) {
	if high > s.score.High {
		s.score.High = high
	}
}

// SetBaseInterval changes the tier-1 move interval. Non-positive values are ignored.
func (s *Session) SetBaseInterval(d time.Duration) {
	if d > 0 {
		s.opts.BaseInterval = d
	}
}

// SetKeepLength toggles length preservation across level-ups.
func (s *Session) SetKeepLength(keep bool) {
	s.keepLength = keep
}

func (s *Session) State() State          { return s.state }
func (s *Session) Options() Options      { return s.opts }
func (s *Session) Level() *LevelMap      { return s.level }
func (s *Session) SpeedLevel() int       { return s.speed }
func (s *Session) Moving() Direction     { return s.moving }
func (s *Session) Locked() Direction     { return s.locked }
func (s *Session) KeepLength() bool      { return s.keepLength }
func (s *Session) Score() Score          { return s.score }
func (s *Session) Gate() Gate            { return s.gate }
func (s *Session) Segments() []Position  { return s.body.Segments() }
func (s *Session) Length() int           { return s.body.Len() }
func (s *Session) Head() Position        { return s.body.Head() }
func (s *Session) BoardSize() (int, int) { return s.boardW, s.boardH }

// Foods returns a copy of the current food batch.
func (s *Session) Foods() FoodSet {
	f := s.foods
	f.Items = append([]Position(nil), s.foods.Items...)
	return f
}
