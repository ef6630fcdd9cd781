package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// Options configures a game session. Only Config is required.
type Options struct {
	Config  core.RuntimeConfig
	Keys    KeyMap
	Store   *storage.Store  // Play journal; nil disables it
	Catalog *levels.Catalog // Needed to reload levels from Watcher events
	Watcher *levels.Watcher // Level file changes; nil disables hot reload
	Logger  *log.Logger
	// ScreenshotDir defaults to ~/.boulder/screenshots.
	ScreenshotDir string
}

// levelSetter is implemented by games that can swap their level in place.
type levelSetter interface {
	SetLevel(levels.Level)
}

// Result describes how a game session ended.
type Result struct {
	Back  bool // Player asked to return to the menu
	State core.GameState
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	keys    KeyMap
	help    help.Model
	styles  Styles
	store   *storage.Store
	catalog *levels.Catalog
	watch   *levels.Subscription // Closed when the session ends
	logger  *log.Logger
	shotDir string

	width     int
	height    int
	startedAt time.Time
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	keys := opts.Keys
	if !keys.Up.Enabled() {
		keys = DefaultKeyMap()
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(config.HomeDir(), "screenshots")
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		help:       help.New(),
		styles:     DefaultStyles(),
		store:      opts.Store,
		catalog:    opts.Catalog,
		logger:     opts.Logger,
		shotDir:    shotDir,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		startedAt:  time.Now(),
	}
	if opts.Watcher != nil {
		m.watch = opts.Watcher.Subscribe()
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	m.config.ScreenH = m.screen.Height()
	return m
}

// close ends the session's level subscription so a pending watch command
// returns and later changes go to the next session only.
func (m Model) close() {
	if m.watch != nil {
		m.watch.Close()
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watch))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelChangedMsg:
		m.reloadLevel(msg.Path)
		return m, watchCmd(m.watch)

	case WatchErrorMsg:
		m.logAt(log.WarnLevel, "level watcher failed", "error", msg.Err)
		return m, watchCmd(m.watch)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logAt(log.WarnLevel, "screenshot failed", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.saveSession()
		m.back = true
		return m, tea.Quit
	case core.ActionRestart:
		m.saveSession()
		m.gameState = core.GameState{}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
// The level keeps running; the board is redrawn for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the board to the window minus the help footer.
func (m *Model) layout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
}

func (m Model) boardHeight() int {
	return max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// reloadLevel re-reads a changed level file and restarts the current level
// if the file provides it.
func (m *Model) reloadLevel(path string) {
	if m.catalog == nil {
		return
	}

	level, err := m.catalog.ReloadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		m.logAt(log.InfoLevel, "level file removed", "path", path)
		return
	}
	if err != nil {
		m.logAt(log.WarnLevel, "level reload failed", "path", path, "error", err)
		return
	}
	if level.ID != m.game.ID() {
		return
	}

	setter, ok := m.game.(levelSetter)
	if !ok {
		return
	}
	m.saveSession()
	setter.SetLevel(level)
	m.gameState = m.game.State()
	m.logAt(log.InfoLevel, "current level restarted after file change", "id", level.ID)
}

// saveSession writes the running session to the journal and starts a new one.
// Sessions in which no tick ran are not recorded.
func (m *Model) saveSession() {
	defer func() { m.startedAt = time.Now() }()

	if m.store == nil || m.gameState.Tick == 0 {
		return
	}
	st := m.gameState
	_, err := m.store.SaveSession(storage.Session{
		LevelID:   m.game.ID(),
		Ticks:     st.Tick,
		Moves:     st.Moves,
		Rejected:  st.Rejected,
		Pushes:    st.Pushes,
		Keys:      st.Keys,
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	})
	if err != nil {
		m.logAt(log.WarnLevel, "could not save session", "level", m.game.ID(), "error", err)
		return
	}
	m.logAt(log.DebugLevel, "session saved", "level", m.game.ID(), "ticks", st.Tick, "moves", st.Moves)
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return err
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logAt(log.InfoLevel, "screenshot saved", "path", path)
	return nil
}

func (m Model) logAt(level log.Level, msg string, keyvals ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Log(level, msg, keyvals...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}

// Result returns how the session ended.
func (m Model) Result() Result {
	return Result{Back: m.back, State: m.gameState}
}

// Run plays the game until the player quits or goes back.
func Run(game registry.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)
	defer model.close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
