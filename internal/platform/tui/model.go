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

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/input"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// Terminal rows below the playfield: the HUD plus the short or full help.
const (
	chromeRows     = 2
	chromeRowsFull = 3
)

// Model is the Bubble Tea model that hosts one game session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	surface  *canvas.CellSurface
	hold     *input.HoldTracker
	hud      *HUD
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
	now      func() time.Time
}

// NewModel creates a model running a fresh Breakout session.
// A nil renderer uses the process's default; a nil logger discards output.
func NewModel(cfg core.RuntimeConfig, r *lipgloss.Renderer, logger *log.Logger) (Model, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hud := NewHUD(r)
	sess, err := session.New(breakout.GameID, cfg, hud, logger)
	if err != nil {
		return Model{}, err
	}

	w, h := breakoutSurfaceSize(sess)
	screen := core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH, false))

	helpModel := help.New()
	helpModel.Width = cfg.ScreenW

	return Model{
		session:  sess,
		screen:   screen,
		surface:  canvas.NewCellSurface(screen, w, h),
		hold:     input.NewHoldTracker(cfg.HoldInitial, cfg.HoldRepeat),
		hud:      hud,
		keys:     DefaultKeyMap(),
		help:     helpModel,
		renderer: r,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// breakoutSurfaceSize returns the logical surface size of the session's game.
func breakoutSurfaceSize(sess *session.Session) (w, h float64) {
	if sim, ok := sess.Game().(*breakout.Simulation); ok {
		cfg := sim.Config()
		return cfg.Surface.Width, cfg.Surface.Height
	}
	return 800, 600
}

func playfieldRows(height int, fullHelp bool) int {
	if fullHelp {
		return max(height-chromeRowsFull, 1)
	}
	return max(height-chromeRows, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.BlurMsg:
		m.dispatch(m.hold.ReleaseAll())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dispatch(m.hold.ReleaseAll())
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, playfieldRows(m.config.ScreenH, m.help.ShowAll))

	case key.Matches(msg, m.keys.Restart):
		m.session.KeyDown(msg.String())

	case key.Matches(msg, m.keys.Left, m.keys.Right):
		m.dispatch(m.hold.Press(msg.String(), m.now()))
	}

	return m, nil
}

// handleResize keeps the game running and rescales the playfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height, m.help.ShowAll))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired key holds and runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.dispatch(m.hold.Expire(now))
	m.session.Frame(m.surface)
	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards synthesized key transitions to the session.
func (m Model) dispatch(events []input.Event) {
	for _, ev := range events {
		if ev.Down {
			m.session.KeyDown(ev.Key)
		} else {
			m.session.KeyUp(ev.Key)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", breakout.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the last frame, the HUD and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.renderer, m.screen) + "\n" +
		m.hud.View() + "\n" +
		m.help.View(m.keys)
}

// Session returns the hosted session.
func (m Model) Session() *session.Session {
	return m.session
}

// HUD returns the status line.
func (m Model) HUD() *HUD {
	return m.hud
}

// Run starts the Bubble Tea program in the current terminal.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, nil, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	_, err = p.Run()
	return err
}
