package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hunting-snake/internal/config"
)

// Settings holds the options adjustable from the settings screen.
type Settings struct {
	KeepLength bool
	Difficulty config.DifficultyPreset
}

const (
	settingKeepLength = iota
	settingDifficulty
	settingBack
	settingCount
)

// SettingsModel lets users toggle length preservation and cycle the difficulty.
type SettingsModel struct {
	cursor    int
	width     int
	values    Settings
	keyMapper *KeyMapper
}

// NewSettingsModel creates a settings screen showing the given values.
func NewSettingsModel(values Settings, width int) SettingsModel {
	if values.Difficulty == "" {
		values.Difficulty = config.DifficultyNormal
	}
	return SettingsModel{
		width:     width,
		values:    values,
		keyMapper: NewKeyMapper(),
	}
}

// Values returns the current settings.
func (m SettingsModel) Values() Settings {
	return m.values
}

// SetWidth updates the width used for centering.
func (m *SettingsModel) SetWidth(width int) {
	m.width = width
}

// HandleKey processes a key. done is true when the user leaves the screen.
func (m SettingsModel) HandleKey(msg tea.KeyMsg) (_ SettingsModel, done bool) {
	switch msg.String() {
	case "left", "a":
		if m.cursor == settingDifficulty {
			m.values.Difficulty = cyclePreset(m.values.Difficulty, -1)
		}
		return m, false
	case "right", "d":
		if m.cursor == settingDifficulty {
			m.values.Difficulty = cyclePreset(m.values.Difficulty, 1)
		}
		return m, false
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < settingCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case settingKeepLength:
			m.values.KeepLength = !m.values.KeepLength
		case settingDifficulty:
			m.values.Difficulty = cyclePreset(m.values.Difficulty, 1)
		case settingBack:
			return m, true
		}
	case MenuActionBack, MenuActionQuit:
		return m, true
	}
	return m, false
}

func cyclePreset(p config.DifficultyPreset, delta int) config.DifficultyPreset {
	n := len(config.Presets)
	idx := 0
	for i, preset := range config.Presets {
		if preset == p {
			idx = i
		}
	}
	return config.Presets[((idx+delta)%n+n)%n]
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S E T T I N G S"), m.width))
	b.WriteString("\n\n")

	keep := "OFF"
	if m.values.KeepLength {
		keep = "ON"
	}
	rows := []string{
		fmt.Sprintf("Keep Snake Length: %s", keep),
		fmt.Sprintf("Difficulty: < %s >", m.values.Difficulty),
		"Back",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			row = accentStyle.Render(row)
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render("Difficulty takes effect on the next game"), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Toggle  |  Left/Right: Change  |  Esc: Back"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}
