package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Renderer styles the output. Nil uses the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that drives one game of breakout.
type Model struct {
	game    *breakout.Game
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   *heldKeys
	palette palette
	runtime core.RuntimeConfig
	logger  *log.Logger

	lastTick time.Time
	now      func() time.Time
	quitting bool
}

// NewModel creates a model with a freshly reset game.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	game := breakout.New(rt)
	game.SetTheme(themeFromConfig(opts.Config.Theme))

	h := help.New()
	if opts.Renderer != nil {
		h.Styles.ShortKey = opts.Renderer.NewStyle().Foreground(lipgloss.Color("250"))
		h.Styles.ShortDesc = opts.Renderer.NewStyle().Foreground(lipgloss.Color("245"))
		h.Styles.FullKey = h.Styles.ShortKey
		h.Styles.FullDesc = h.Styles.ShortDesc
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH)),
		keys:    NewKeyMap(opts.Config.Keys),
		help:    h,
		input:   newHeldKeys(opts.Config.Input.HoldWindow()),
		palette: newPalette(opts.Renderer),
		runtime: rt,
		logger:  logger,
		now:     time.Now,
	}
}

// themeFromConfig converts validated glyph strings to runes.
func themeFromConfig(t config.ThemeConfig) breakout.Theme {
	theme := breakout.DefaultTheme()
	if t.Paddle != "" {
		theme.Paddle = config.Glyph(t.Paddle)
	}
	if t.Ball != "" {
		theme.Ball = config.Glyph(t.Ball)
	}
	if t.Block != "" {
		theme.Block = config.Glyph(t.Block)
	}
	if t.Life != "" {
		theme.Life = config.Glyph(t.Life)
	}
	return theme
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	return core.Max(0, h-1)
}

// Game returns the running game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.runtime.TickRate),
		tea.SetWindowTitle("Breakout"),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is fixed size, so only the projection changes
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score(), "phase", m.game.Phase())
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.input.press(a, m.now())
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, now)
	m.lastTick = now

	phase, lives := m.game.Phase(), m.game.Lives()
	m.game.Frame(delta, m.input.frame(now))

	if m.game.Lives() < lives {
		m.logger.Info("life lost", "lives", m.game.Lives(), "score", m.game.Score())
	}
	if next := m.game.Phase(); next != phase {
		m.logger.Info("phase changed",
			"from", phase,
			"to", next,
			"score", m.game.Score(),
			"lives", m.game.Lives(),
		)
	}
	if m.logger.GetLevel() <= log.DebugLevel {
		snap := m.game.Snapshot()
		m.logger.Debug("frame", "delta", delta, "hash", snap.Hash())
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
