package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hunting-snake/internal/config"
	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/snake"
	"github.com/vovakirdan/hunting-snake/internal/storage"
)

// bannerDuration is how long the level-up banner stays on screen.
const bannerDuration = 2 * time.Second

// DefaultSaveFile is offered by the save and load prompts.
const DefaultSaveFile = "snake.sav"

var (
	errSavesDisabled = errors.New("saves are disabled")
	errBadSaveName   = errors.New("save name must be a plain file name")
)

// Options configures the game front end.
type Options struct {
	Session       snake.Options
	Difficulty    config.DifficultyPreset // Preset already applied to Session.BaseInterval
	BaseInterval  time.Duration           // Tier-1 interval before scaling; derived from Session when zero
	Store         storage.RunLog          // May be nil; runs are then not recorded
	Logger        *log.Logger
	Sounder       Sounder
	Runtime       core.RuntimeConfig
	Player        string // Prefilled in the name prompt
	SaveDir       string // Relative save file names resolve here
	ScreenshotDir string
	Output        *Output // Terminal writer used by Run; stdout when nil

	// Remote confines save files to SaveDir: only plain file names are
	// accepted, and saving is off when SaveDir is empty.
	Remote bool
}

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modePrompt
	modeScores
	modeSettings
	modeDead
)

type promptKind int

const (
	promptSave promptKind = iota
	promptLoad
	promptName
)

// Model is the Bubble Tea model for a Hunting Snake terminal.
type Model struct {
	opts    Options
	logger  *log.Logger
	sounder Sounder

	session    *snake.Session
	loop       *snake.Loop
	screen     *core.Screen
	base       time.Duration // Tier-1 interval before difficulty scaling
	configured time.Duration // Interval of opts.Difficulty as configured

	mode       mode
	returnMode mode // Where a cancelled prompt goes back to
	prompt     promptKind
	input      textinput.Model
	menu       MenuModel
	settings   SettingsModel
	scores     ScoreboardModel

	width       int
	height      int
	paused      bool
	lastTick    time.Time
	banner      string
	bannerUntil time.Time
	status      string
	highScore   int
	quitting    bool
}

// NewModel creates the root model. The session starts idle on the main menu.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sounder == nil {
		opts.Sounder = NopSounder{}
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Session.Seed == 0 {
		opts.Session.Seed = time.Now().UnixNano()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}

	session := snake.NewSession(opts.Session)
	configured := session.Options().BaseInterval
	base := opts.BaseInterval
	if base <= 0 {
		base = time.Duration(float64(configured) / config.IntervalScaleForPreset(opts.Difficulty))
	}

	w, h := session.ScreenSize()
	m := Model{
		opts:       opts,
		logger:     opts.Logger,
		sounder:    opts.Sounder,
		session:    session,
		loop:       snake.NewLoop(session),
		screen:     core.NewScreen(w, h),
		base:       base,
		configured: configured,
		mode:       modeMenu,
		menu:       NewMenuModel(opts.Runtime.ScreenW),
		settings:   NewSettingsModel(Settings{KeepLength: session.KeepLength(), Difficulty: opts.Difficulty}, opts.Runtime.ScreenW),
		width:      opts.Runtime.ScreenW,
		height:     opts.Runtime.ScreenH,
	}
	m.highScore = m.storedHighScore()
	return m
}

// Session returns the driven simulation.
func (m Model) Session() *snake.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetWidth(msg.Width)
		m.settings.SetWidth(msg.Width)
		if m.mode == modeScores {
			m.scores.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.mode == modePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Stop()
	m.quitting = true
	return m, tea.Quit
}

// handleKey dispatches a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modePlaying:
		return m.handlePlayKey(msg)
	case modePrompt:
		return m.handlePromptKey(msg)
	case modeScores:
		return m.handleScoresKey(msg)
	case modeSettings:
		var done bool
		m.settings, done = m.settings.HandleKey(msg)
		if done {
			m.applySettings(m.settings.Values())
			m.mode = modeMenu
		}
		return m, nil
	case modeDead:
		return m.handleDeadKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice MenuChoice
	m.menu, choice = m.menu.HandleKey(msg)

	switch choice {
	case MenuNewGame:
		m.startGame()
	case MenuLoadGame:
		return m.openFilePrompt(promptLoad, modeMenu)
	case MenuHighScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.width, m.height)
		m.mode = modeScores
	case MenuSettings:
		m.settings = NewSettingsModel(m.settings.Values(), m.width)
		m.mode = modeSettings
	case MenuQuit:
		return m.quit()
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := NewKeyMapper()
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	if d, ok := ActionDirection(action); ok {
		if !m.paused {
			m.session.Turn(d)
		}
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
		m.lastTick = time.Time{}
	case core.ActionSave:
		return m.openFilePrompt(promptSave, modePlaying)
	case core.ActionLoad:
		return m.openFilePrompt(promptLoad, modePlaying)
	case core.ActionBack:
		m.session.Stop()
		m.status = ""
		m.mode = modeMenu
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scores = sb
	}
	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		m.mode = modeMenu
	}
	return m, cmd
}

func (m Model) handleDeadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.startGame()
	case "q":
		return m.quit()
	default:
		m.session.Stop()
		m.status = ""
		m.mode = modeMenu
	}
	return m, nil
}

// startGame begins a fresh game with the stored high score and current settings.
func (m *Model) startGame() {
	m.session.SetKeepLength(m.settings.Values().KeepLength)
	m.session.SetBaseInterval(m.scaledBase(m.settings.Values().Difficulty))
	m.session.Start()
	m.highScore = max(m.highScore, m.storedHighScore())
	m.session.SetHighScore(m.highScore)
	m.loop.Reset()

	m.mode = modePlaying
	m.paused = false
	m.lastTick = time.Time{}
	m.banner = ""
	m.status = ""
	m.logger.Debug("game started", "seed", m.opts.Session.Seed, "difficulty", m.settings.Values().Difficulty)
}

// scaledBase returns the tier-1 interval for p. The configured preset keeps
// the configured interval, whatever interval_scale it was loaded with.
func (m Model) scaledBase(p config.DifficultyPreset) time.Duration {
	if p == m.opts.Difficulty {
		return m.configured
	}
	return time.Duration(float64(m.base) * config.IntervalScaleForPreset(p))
}

// applySettings copies the settings screen values onto the session.
func (m *Model) applySettings(s Settings) {
	m.session.SetKeepLength(s.KeepLength)
	m.logger.Debug("settings changed", "keep_length", s.KeepLength, "difficulty", s.Difficulty)
}

func (m Model) storedHighScore() int {
	if m.opts.Store == nil {
		return 0
	}
	high, err := m.opts.Store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "err", err)
		return 0
	}
	return high
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.banner != "" && t.After(m.bannerUntil) {
		m.banner = ""
	}

	next := tickCmd(m.opts.Runtime.TickRate)
	if m.mode != modePlaying || m.paused || m.tooSmall() {
		m.lastTick = time.Time{}
		return m, next
	}

	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = t.Sub(m.lastTick)
	}
	m.lastTick = t

	res, stepped := m.loop.Advance(elapsed)
	if !stepped {
		return m, next
	}

	cmds := []tea.Cmd{next}
	for _, ev := range res.Events {
		switch ev.Kind {
		case snake.EventEat:
			cmds = append(cmds, playCmd(m.sounder, SoundEat))
		case snake.EventLevelUp:
			m.banner = fmt.Sprintf("LEVEL %d - %s", ev.SpeedLevel, m.session.Level().Theme)
			m.bannerUntil = t.Add(bannerDuration)
			m.logger.Info("level up", "level", ev.SpeedLevel, "theme", m.session.Level().Theme, "score", ev.Score)
			cmds = append(cmds, playCmd(m.sounder, SoundLevelUp))
		case snake.EventHighScore:
			m.logger.Debug("high score beaten", "score", ev.Score)
			cmds = append(cmds, playCmd(m.sounder, SoundHighScore))
		case snake.EventDeath:
			cmds = append(cmds, playCmd(m.sounder, SoundDeath))
			var cmd tea.Cmd
			m, cmd = m.gameOver()
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// gameOver records the finished run. A positive score asks for a name first.
func (m Model) gameOver() (Model, tea.Cmd) {
	sc := m.session.Score()
	m.highScore = max(m.highScore, sc.High)
	m.logger.Info("game over", "score", sc.Current, "level", m.session.SpeedLevel(), "length", m.session.Length())

	if sc.Current > 0 && m.opts.Store != nil {
		next, cmd := m.openPrompt(promptName, modeDead)
		return next.(Model), cmd
	}

	m.mode = modeDead
	m.status = fmt.Sprintf("Dead! Final Score: %d. Press Y to restart or any key to return menu.", sc.Current)
	return m, nil
}

// openFilePrompt opens the save or load prompt unless saves are disabled.
func (m Model) openFilePrompt(kind promptKind, back mode) (tea.Model, tea.Cmd) {
	if !m.savesEnabled() {
		m.status = "Saves are disabled on this server."
		return m, nil
	}
	return m.openPrompt(kind, back)
}

func (m Model) savesEnabled() bool {
	return !m.opts.Remote || m.opts.SaveDir != ""
}

// openPrompt shows a single-line text prompt.
func (m Model) openPrompt(kind promptKind, back mode) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = "> "
	switch kind {
	case promptName:
		ti.CharLimit = storage.MaxPlayerName
		ti.Placeholder = storage.DefaultPlayer
		if m.opts.Player != "" {
			ti.SetValue(storage.NormalizePlayerName(m.opts.Player))
		}
	default:
		ti.CharLimit = 255
		ti.Placeholder = DefaultSaveFile
		ti.SetValue(DefaultSaveFile)
	}
	ti.Width = 32

	m.input = ti
	m.prompt = kind
	m.returnMode = back
	m.mode = modePrompt
	m.status = ""
	m.lastTick = time.Time{}
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitPrompt(), nil
	case tea.KeyEsc:
		if m.prompt == promptName {
			// Esc still records the run, under the default name.
			m.input.SetValue("")
			return m.submitPrompt(), nil
		}
		m.mode = m.returnMode
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt() Model {
	value := m.input.Value()
	m.input.Blur()

	switch m.prompt {
	case promptName:
		m.recordRun(value)
	case promptSave:
		path, err := m.resolvePath(value)
		if err == nil {
			err = m.session.SaveFile(path)
		}
		if err != nil {
			m.logger.Error("save failed", "name", value, "path", path, "err", err)
			m.status = "Save failed!" + pathHint(err)
		} else {
			m.logger.Info("game saved", "path", path)
			m.status = "Game saved."
		}
		m.mode = m.returnMode
	case promptLoad:
		path, err := m.resolvePath(value)
		if err != nil {
			m.logger.Error("load failed", "name", value, "err", err)
			m.status = "Load failed!" + pathHint(err)
			m.mode = m.returnMode
			break
		}
		m.loadGame(path)
	}
	return m
}

// recordRun saves the finished run under name and shows the result.
func (m *Model) recordRun(name string) {
	sc := m.session.Score()
	run := storage.RunRecord{
		Player:    name,
		Score:     sc.Current,
		Level:     m.session.SpeedLevel(),
		CreatedAt: time.Now(),
	}

	m.mode = modeDead
	if err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "err", err)
		m.status = fmt.Sprintf("Score not saved! Final Score: %d. Press Y to restart or any key to return menu.", sc.Current)
		return
	}

	high := ""
	if sc.IsHigh() {
		high = " NEW HIGH SCORE!"
	}
	m.status = fmt.Sprintf("Score saved! Final Score: %d%s Press Y to restart or any key to return menu.", sc.Current, high)
}

// loadGame restores a saved game. A failed load leaves the session untouched.
func (m *Model) loadGame(path string) {
	if err := m.session.LoadFile(path); err != nil {
		m.logger.Error("load failed", "path", path, "err", err)
		m.status = "Load failed!"
		m.mode = m.returnMode
		return
	}

	m.logger.Info("game loaded", "path", path, "level", m.session.SpeedLevel())
	m.session.SetHighScore(m.highScore)
	m.loop.Reset()
	m.lastTick = time.Time{}
	m.banner = ""
	m.status = ""

	if m.session.State() == snake.StateDead {
		m.mode = modeDead
		m.status = "Loaded a finished game. Press Y to restart or any key to return menu."
		return
	}
	m.session.Resume()
	m.paused = false
	m.mode = modePlaying
}

// resolvePath maps a name typed into the save or load prompt to a file path.
// Remote players may only name files directly inside SaveDir.
func (m Model) resolvePath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSaveFile
	}

	if m.opts.Remote {
		if m.opts.SaveDir == "" {
			return "", errSavesDisabled
		}
		if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
			return "", fmt.Errorf("%w: %q", errBadSaveName, name)
		}
		return filepath.Join(m.opts.SaveDir, name), nil
	}

	if p, err := config.ExpandHome(name); err == nil {
		name = p
	}
	if !filepath.IsAbs(name) && m.opts.SaveDir != "" {
		name = filepath.Join(m.opts.SaveDir, name)
	}
	return name, nil
}

func pathHint(err error) string {
	switch {
	case errors.Is(err, errBadSaveName):
		return " Use a plain file name."
	case errors.Is(err, errSavesDisabled):
		return " Saves are disabled on this server."
	}
	return ""
}

// tooSmall reports whether the terminal cannot fit the board.
func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	w, h := m.session.ScreenSize()
	return m.width < w || m.height < h+1
}

// saveScreenshot saves the current board to a text file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		return
	}
	m.renderBoard()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not write screenshot", "path", path, "err", err)
		return
	}
	m.status = "Screenshot saved."
}

func (m *Model) renderBoard() {
	w, h := m.session.ScreenSize()
	if m.screen.Width() != w || m.screen.Height() != h {
		m.screen.Resize(w, h)
	}
	m.session.Render(m.screen)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.mode {
	case modeMenu:
		content = m.menu.View(m.highScore, m.status)
	case modeScores:
		content = m.scores.View()
	case modeSettings:
		content = m.settings.View()
	case modePrompt:
		content = m.promptView()
	default:
		content = m.gameView()
	}

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) gameView() string {
	if m.tooSmall() {
		w, h := m.session.ScreenSize()
		return alertStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height))
	}

	m.renderBoard()
	board := RenderScreen(m.screen)

	var footer string
	switch {
	case m.mode == modeDead:
		footer = alertStyle.Render(m.status)
	case m.paused:
		footer = accentStyle.Render("PAUSED - press P to continue")
	case m.banner != "":
		footer = titleStyle.Render(m.banner)
	case m.status != "":
		footer = accentStyle.Render(m.status)
	default:
		footer = mutedStyle.Render("Arrows/WASD: Move  P: Pause  L: Save  T: Load  Esc: Menu  Q: Quit")
	}
	return board + "\n" + footer
}

func (m Model) promptView() string {
	var title string
	switch m.prompt {
	case promptName:
		title = fmt.Sprintf("Final Score: %d. Enter your name:", m.session.Score().Current)
	case promptSave:
		title = "Enter filename to save:"
	case promptLoad:
		title = "Enter filename to load:"
	}
	return titleStyle.Render(title) + "\n\n" + m.input.View() + "\n\n" +
		mutedStyle.Render("Enter: confirm  |  Esc: cancel")
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	if opts.Output == nil {
		opts.Output = NewOutput(os.Stdout)
	}
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithOutput(opts.Output),
	)

	_, err := p.Run()
	return err
}
