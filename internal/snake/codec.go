package snake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxCount bounds the body and food counts accepted from a save file.
const maxCount = 65536

// maxBoard bounds either board dimension accepted from a save file.
const maxBoard = 1024

// ErrNoSession is returned when saving a session that has not been started.
var ErrNoSession = errors.New("snake: no game in progress")

// Snapshot is the persisted part of a session. Scores are not included.
type Snapshot struct {
	Width      int
	Height     int
	Moving     Direction
	Locked     Direction
	SpeedLevel int
	State      State
	KeepLength bool
	FoodIndex  int
	GateActive bool
	Gate       Position
	Body       []Position // tail first
	Foods      []Position
}

// DecodeError describes a malformed save stream.
type DecodeError struct {
	Field string // Field being read
	Token int    // 1-based token index in the stream
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("snake: decode %s (token %d): %v", e.Field, e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.boardW,
		Height:     s.boardH,
		Moving:     s.moving,
		Locked:     s.locked,
		SpeedLevel: s.speed,
		State:      s.state,
		KeepLength: s.keepLength,
		FoodIndex:  s.foods.Index,
		GateActive: s.gate.Active,
		Gate:       s.gate.Pos,
		Body:       s.body.Segments(),
		Foods:      append([]Position(nil), s.foods.Items...),
	}
}

// WriteSnapshot encodes snap in the line-oriented text format.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", snap.Width, snap.Height)
	fmt.Fprintf(bw, "%d %d %d %d\n", snap.Moving, snap.Locked, snap.SpeedLevel, snap.State)
	fmt.Fprintf(bw, "%d %d\n", btoi(snap.KeepLength), snap.FoodIndex)
	fmt.Fprintf(bw, "%d %d %d\n", btoi(snap.GateActive), snap.Gate.X, snap.Gate.Y)

	fmt.Fprintf(bw, "%d\n", len(snap.Body))
	for _, p := range snap.Body {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}
	fmt.Fprintf(bw, "%d\n", len(snap.Foods))
	for _, p := range snap.Foods {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}
	return bw.Flush()
}

// DecodeSnapshot parses a snapshot written by WriteSnapshot. Tokens may be
// separated by any whitespace. Range checks that do not depend on session
// options are applied here.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	d := &decoder{sc: bufio.NewScanner(r)}
	d.sc.Split(bufio.ScanWords)

	var snap Snapshot
	snap.Width = d.readInt("width")
	snap.Height = d.readInt("height")
	snap.Moving = Direction(d.readInt("moving"))
	snap.Locked = Direction(d.readInt("locked"))
	snap.SpeedLevel = d.readInt("speed level")
	snap.State = State(d.readInt("state"))
	snap.KeepLength = d.readBool("keep length")
	snap.FoodIndex = d.readInt("food index")
	snap.GateActive = d.readBool("gate active")
	snap.Gate.X = d.readInt("gate x")
	snap.Gate.Y = d.readInt("gate y")
	snap.Body = d.positions("body")
	snap.Foods = d.positions("food")
	if d.err != nil {
		return Snapshot{}, d.err
	}

	if err := snap.check(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (snap Snapshot) check() error {
	switch {
	case snap.Width <= 0 || snap.Height <= 0 || snap.Width > maxBoard || snap.Height > maxBoard:
		return fmt.Errorf("snake: invalid board size %dx%d", snap.Width, snap.Height)
	case !snap.Moving.Valid():
		return fmt.Errorf("snake: invalid moving direction %d", snap.Moving)
	case !snap.Locked.Valid():
		return fmt.Errorf("snake: invalid locked direction %d", snap.Locked)
	case snap.SpeedLevel < 1:
		return fmt.Errorf("snake: invalid speed level %d", snap.SpeedLevel)
	case !snap.State.Valid():
		return fmt.Errorf("snake: invalid state %d", snap.State)
	case len(snap.Body) == 0:
		return errors.New("snake: empty body")
	case snap.FoodIndex < 0:
		return fmt.Errorf("snake: invalid food index %d", snap.FoodIndex)
	case len(snap.Foods) > 0 && snap.FoodIndex >= len(snap.Foods):
		return fmt.Errorf("snake: food index %d out of range for %d foods", snap.FoodIndex, len(snap.Foods))
	}
	return nil
}

// Save writes the session to w. The session is not modified.
func (s *Session) Save(w io.Writer) error {
	if s.state == StateIdle {
		return ErrNoSession
	}
	if err := WriteSnapshot(w, s.Snapshot()); err != nil {
		return fmt.Errorf("snake: save: %w", err)
	}
	return nil
}

// Load replaces the session state with a snapshot read from r. Nothing is
// changed unless the whole snapshot parses and validates.
func (s *Session) Load(r io.Reader) error {
	snap, err := DecodeSnapshot(r)
	if err != nil {
		return err
	}
	if err := s.admit(snap); err != nil {
		return err
	}
	s.apply(snap)
	return nil
}

// Restore applies an already decoded snapshot, with the same validation as
// Load.
func (s *Session) Restore(snap Snapshot) error {
	if err := snap.check(); err != nil {
		return err
	}
	if err := s.admit(snap); err != nil {
		return err
	}
	s.apply(snap)
	return nil
}

// admit applies the checks that depend on session options. The board must
// match the map its speed level selects, since that map drives collision.
func (s *Session) admit(snap Snapshot) error {
	if snap.SpeedLevel > s.opts.MaxSpeed {
		return fmt.Errorf("snake: speed level %d exceeds maximum %d", snap.SpeedLevel, s.opts.MaxSpeed)
	}
	if lvl := LevelFor(snap.SpeedLevel); snap.Width != lvl.Width || snap.Height != lvl.Height {
		return fmt.Errorf("snake: board %dx%d does not match level %d map %dx%d",
			snap.Width, snap.Height, snap.SpeedLevel, lvl.Width, lvl.Height)
	}
	return nil
}

func (s *Session) apply(snap Snapshot) {
	s.boardW, s.boardH = snap.Width, snap.Height
	s.moving = snap.Moving
	s.locked = snap.Locked
	s.speed = snap.SpeedLevel
	s.state = snap.State
	s.keepLength = snap.KeepLength
	s.directionChanged = false

	s.foods = FoodSet{
		Items:   append([]Position(nil), snap.Foods...),
		Index:   snap.FoodIndex,
		Visible: !snap.GateActive,
	}
	s.gate = Gate{Pos: snap.Gate, Active: snap.GateActive}
	s.body = NewBody(snap.Body)
	s.level = LevelFor(s.speed)
}

// SaveFile writes the session to path, creating or truncating it.
func (s *Session) SaveFile(path string) error {
	if s.state == StateIdle {
		return ErrNoSession
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snake: save %s: %w", path, err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snake: save %s: %w", path, err)
	}
	return nil
}

// LoadFile loads the session from path.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snake: load %s: %w", path, err)
	}
	defer f.Close()
	return s.Load(f)
}

// ReadSnapshotFile decodes the snapshot stored at path.
func ReadSnapshotFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snake: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// decoder reads whitespace separated integers, keeping the first error.
type decoder struct {
	sc    *bufio.Scanner
	token int
	err   error
}

func (d *decoder) readInt(field string) int {
	if d.err != nil {
		return 0
	}
	d.token++
	if !d.sc.Scan() {
		err := d.sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		d.err = &DecodeError{Field: field, Token: d.token, Err: err}
		return 0
	}
	n, err := strconv.Atoi(d.sc.Text())
	if err != nil {
		d.err = &DecodeError{Field: field, Token: d.token, Err: err}
		return 0
	}
	return n
}

func (d *decoder) readBool(field string) bool {
	n := d.readInt(field)
	if d.err == nil && n != 0 && n != 1 {
		d.err = &DecodeError{Field: field, Token: d.token, Err: fmt.Errorf("want 0 or 1, got %d", n)}
	}
	return n == 1
}

func (d *decoder) positions(field string) []Position {
	n := d.readInt(field + " count")
	if d.err != nil {
		return nil
	}
	if n < 0 || n > maxCount {
		d.err = &DecodeError{Field: field + " count", Token: d.token, Err: fmt.Errorf("count %d out of range", n)}
		return nil
	}
	ps := make([]Position, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		x := d.readInt(field + " x")
		y := d.readInt(field + " y")
		ps = append(ps, Position{X: x, Y: y})
	}
	return ps
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
