package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// MenuChoice identifies an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuNewGame
	MenuLoadGame
	MenuHighScores
	MenuSettings
	MenuQuit
)

// MenuItem is a selectable row in the main menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var mainMenuItems = []MenuItem{
	{Choice: MenuNewGame, Title: "New Game"},
	{Choice: MenuLoadGame, Title: "Load Game"},
	{Choice: MenuHighScores, Title: "High Scores"},
	{Choice: MenuSettings, Title: "Settings"},
	{Choice: MenuQuit, Title: "Quit"},
}

// MenuModel is the main menu component. It is driven by the root Model
// and reports the picked entry instead of quitting the program.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	keyMapper *KeyMapper
}

// NewMenuModel creates the main menu.
func NewMenuModel(width int) MenuModel {
	return MenuModel{
		items:     mainMenuItems,
		width:     width,
		keyMapper: NewKeyMapper(),
	}
}

// SetWidth updates the width used for centering.
func (m *MenuModel) SetWidth(width int) {
	m.width = width
}

// Cursor returns the highlighted row.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// HandleKey processes a key and returns the chosen entry, if any.
// Digits 1-5 pick an entry directly.
func (m MenuModel) HandleKey(msg tea.KeyMsg) (MenuModel, MenuChoice) {
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(m.items) {
			m.cursor = idx
			return m, m.items[idx].Choice
		}
		return m, MenuNone
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m, MenuQuit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m, m.items[m.cursor].Choice
	}
	return m, MenuNone
}

// View renders the menu.
func (m MenuModel) View(highScore int, status string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H U N T I N G   S N A K E  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.Title
		if i == m.cursor {
			cursor = "> "
			line = accentStyle.Render(line)
		}
		b.WriteString(centerText(cursor+string(rune('1'+i))+". "+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(highScoreLine(highScore)), m.width))
	b.WriteString("\n")
	if status != "" {
		b.WriteString(centerText(alertStyle.Render(status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter/1-5: Select  |  Q: Quit"
	b.WriteString(centerText(mutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func highScoreLine(highScore int) string {
	if highScore <= 0 {
		return "No high score yet"
	}
	return "High Score: " + humanize.Comma(int64(highScore))
}
