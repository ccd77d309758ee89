// Package tui provides the Bubble Tea integration for the farm.
// It handles the terminal UI loop, input mapping, run history and the
// SSH server.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameOptions configures a GameModel.
type GameOptions struct {
	Store  *storage.Store // nil disables run history
	Logger *log.Logger    // nil discards notifications
	Player string         // recorded with saved runs

	// AllowBack lets esc/b leave the game for the menu.
	AllowBack bool

	// ScreenshotDir overrides ~/.farm/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model for playing a farm.
// The game only changes in response to keys; there is no tick loop.
type GameModel struct {
	game       *farm.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	savedRun   string // run ID already written to the store
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero cfg.Seed picks a
// time-based seed.
func NewGameModel(game *farm.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:   game,
		config: cfg,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
	if !opts.AllowBack {
		m.keys.Back.SetEnabled(false)
	}
	w, gh := m.gameArea()
	m.screen = core.NewScreen(w, gh)
	return m
}

// Init starts the farm.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("farm started",
		"run", m.game.RunID(),
		"seed", m.config.Seed,
		"player", m.opts.Player,
	)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Every handled key results in a redraw.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionNew:
		m.newFarm()
	default:
		m.step(core.FrameOf(action))
	}

	return m, nil
}

// step feeds one input frame to the game, logs its notifications and
// records the run the first time the farm is won.
func (m *GameModel) step(in core.InputFrame) {
	m.game.Step(in)

	for _, ev := range m.game.Events() {
		m.logger.Info(ev.Message(), ev.Fields()...)
	}

	if m.game.WonAt() > 0 && m.savedRun != m.game.RunID() {
		m.saveRun()
	}
}

// saveRun writes the current run to the store once.
func (m *GameModel) saveRun() {
	m.savedRun = m.game.RunID()
	if m.opts.Store == nil {
		return
	}

	stats := m.game.Stats()
	_, err := m.opts.Store.SaveRun(storage.RunResult{
		RunID:      stats.RunID,
		Player:     m.opts.Player,
		Difficulty: stats.Difficulty,
		Seed:       stats.Seed,
		Turns:      stats.WonAt,
		Mature:     stats.Mature,
		Sown:       stats.Sown,
		Reaped:     stats.Reaped,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", stats.RunID, "turns", stats.WonAt)
}

// newFarm reseeds from the clock and starts over.
func (m *GameModel) newFarm() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.logger.Info("new farm", "run", m.game.RunID(), "seed", m.config.Seed)
}

// helpView renders the help footer. The full help is only shown when the
// board still fits above it; otherwise the short help is kept.
func (m GameModel) helpView() string {
	if m.help.ShowAll {
		full := m.help.View(m.keys)
		if _, minH := farm.MinScreenSize(); m.config.ScreenH-lipgloss.Height(full) >= minH {
			return full
		}
	}
	short := m.help
	short.ShowAll = false
	return short.View(m.keys)
}

// gameArea returns the screen size left for the board under the help footer.
func (m GameModel) gameArea() (w, h int) {
	h = m.config.ScreenH - lipgloss.Height(m.helpView())
	if h < 0 {
		h = 0
	}
	return m.config.ScreenW, h
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = m.gameArea()
	return cfg
}

// relayout resizes the screen buffer and the game without resetting it.
func (m *GameModel) relayout() {
	w, h := m.gameArea()
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".farm", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board followed by the help footer.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.helpView())
}

// Game returns the farm being played.
func (m GameModel) Game() *farm.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal. It reports whether the player
// asked to return to the menu.
func Run(game *farm.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
