package tui

import (
	"io"
	"sync"
)

// invalidFd is reported by Output when the wrapped writer is not a file.
const invalidFd = ^uintptr(0)

// Output is the terminal writer shared by the renderer and the bell. Each
// Write holds a lock, so a cue written from a command lands between two
// frames instead of inside one.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutput wraps w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write writes p to the wrapped writer in one locked call.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// Read reads from the wrapped writer when it is also a reader.
func (o *Output) Read(p []byte) (int, error) {
	if r, ok := o.w.(io.Reader); ok {
		return r.Read(p)
	}
	return 0, io.EOF
}

// Close is a no-op; the owner of the wrapped writer closes it.
func (o *Output) Close() error {
	return nil
}

// Fd returns the descriptor of the wrapped file so terminal size queries
// keep working.
func (o *Output) Fd() uintptr {
	if f, ok := o.w.(interface{ Fd() uintptr }); ok {
		return f.Fd()
	}
	return invalidFd
}
