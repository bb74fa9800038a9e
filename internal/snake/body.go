package snake

// Body is the ordered snake body. Index 0 is the tail, the last element is
// the head.
type Body struct {
	segs []Position
}

// NewBody copies segs (tail first) into a new Body.
func NewBody(segs []Position) *Body {
	b := &Body{segs: make([]Position, len(segs))}
	copy(b.segs, segs)
	return b
}

// NewRun builds a horizontal body of length n with its tail at (x, y),
// extending to the right.
func NewRun(x, y, n int) *Body {
	segs := make([]Position, n)
	for i := range segs {
		segs[i] = Position{X: x + i, Y: y}
	}
	return &Body{segs: segs}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// Head returns the newest segment. The body must not be empty.
func (b *Body) Head() Position {
	return b.segs[len(b.segs)-1]
}

// Segments returns a copy of the segments, tail first.
func (b *Body) Segments() []Position {
	out := make([]Position, len(b.segs))
	copy(out, b.segs)
	return out
}

// Contains reports whether any segment, head included, occupies p.
func (b *Body) Contains(p Position) bool {
	for _, s := range b.segs {
		if s == p {
			return true
		}
	}
	return false
}

// PeekNextHead returns the head moved one cell in d without mutating.
func (b *Body) PeekNextHead(d Direction) Position {
	return b.Head().Add(d)
}

// HitsSelf reports whether p collides with the pre-move body, excluding the
// current head. The tail that is about to move is still counted.
func (b *Body) HitsSelf(p Position) bool {
	if len(b.segs) <= 1 {
		return false
	}
	for _, s := range b.segs[:len(b.segs)-1] {
		if s == p {
			return true
		}
	}
	return false
}

// Advance appends head. Unless grew is set, the tail is dropped so the
// length stays the same.
func (b *Body) Advance(head Position, grew bool) {
	b.segs = append(b.segs, head)
	if !grew {
		b.segs = b.segs[1:]
	}
}
