package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/snake"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{"p", core.ActionPause, false},
		{"l", core.ActionSave, false},
		{"t", core.ActionLoad, false},
		{"y", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"enter", core.ActionConfirm, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyPress(tt.key))
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestActionDirection(t *testing.T) {
	want := map[core.Action]snake.Direction{
		core.ActionLeft:  snake.DirLeft,
		core.ActionRight: snake.DirRight,
		core.ActionUp:    snake.DirUp,
		core.ActionDown:  snake.DirDown,
	}
	for action, dir := range want {
		got, ok := ActionDirection(action)
		assert.True(t, ok, action.String())
		assert.Equal(t, dir, got, action.String())
	}

	_, ok := ActionDirection(core.ActionPause)
	assert.False(t, ok)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyPress("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyPress("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyPress("enter")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(keyPress("esc")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyPress("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyPress("x")))
}
