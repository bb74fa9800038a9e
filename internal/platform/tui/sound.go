package tui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Sound identifies a game cue.
type Sound int

const (
	SoundEat Sound = iota
	SoundLevelUp
	SoundHighScore
	SoundDeath
)

// Sounder plays game cues. Implementations must not block for long.
type Sounder interface {
	Play(Sound)
}

// NopSounder discards every cue.
type NopSounder struct{}

// Play does nothing.
func (NopSounder) Play(Sound) {}

// BellSounder rings the terminal bell on W, more times for bigger events.
// W should be the Output the program renders to, so a bell never splits a
// frame.
type BellSounder struct {
	W io.Writer
}

// Play writes one or more BEL characters.
func (b BellSounder) Play(s Sound) {
	if b.W == nil {
		return
	}
	n := 1
	switch s {
	case SoundLevelUp, SoundHighScore:
		n = 2
	case SoundDeath:
		n = 3
	}
	//nolint:errcheck // Best-effort cue
	io.WriteString(b.W, strings.Repeat("\a", n))
}

// playCmd plays a cue off the update path.
func playCmd(s Sounder, snd Sound) tea.Cmd {
	return func() tea.Msg {
		s.Play(snd)
		return nil
	}
}
