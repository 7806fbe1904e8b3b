package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conga/internal/chase"
	"github.com/vovakirdan/conga/internal/config"
	"github.com/vovakirdan/conga/internal/core"
)

const (
	// restartDelay is how long the end-of-session summary stays up.
	restartDelay = 3 * time.Second
	// blinkCount is how many times the character blinks while flagged.
	blinkCount = 5
	// nudgeCells is how far one direction key moves the target.
	nudgeCells = 2
)

// Options configures a chase model.
type Options struct {
	Runtime core.RuntimeConfig
	Chase   config.Chase
	Logger  *log.Logger // nil discards

	// AllowScreenshot enables ctrl+s, which writes frames under $HOME on
	// the machine running the model. Only local play sets it.
	AllowScreenshot bool
}

// Model is the Bubble Tea model for one player's chase sessions.
// A session ends in Won or Lost; the model then shows a summary and
// starts a fresh session after restartDelay or on the restart key.
type Model struct {
	cfg     config.Chase
	runtime core.RuntimeConfig
	logger  *log.Logger
	newRand func(seed int64) chase.RandSource

	session *chase.Session
	snap    chase.Snapshot
	gen     int // incremented on every restart

	screen *core.Screen
	view   Viewport
	keys   KeyMap
	help   help.Model

	now      time.Time // timestamp of the latest frame
	endedAt  time.Time // timestamp of the frame that ended the session
	quitting bool
}

// NewModel creates a model and configures its first session.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:     opts.Chase,
		runtime: rt,
		logger:  logger,
		newRand: func(seed int64) chase.RandSource { return rand.New(rand.NewSource(seed)) },
		screen:  core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 1)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.view = m.viewportFor(rt.ScreenW, rt.ScreenH)
	m.help.Width = rt.ScreenW
	m.keys.Screenshot.SetEnabled(opts.AllowScreenshot)

	if err := m.startSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession replaces the current session with a fresh one.
func (m *Model) startSession() error {
	s, err := chase.Configure(m.cfg, m.newRand(m.runtime.Seed+int64(m.gen)))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	m.session = s
	m.snap = s.Last()
	m.endedAt = time.Time{}
	m.keys.Restart.SetEnabled(false)
	m.logger.Info("session started", "session", m.gen, "seed", m.runtime.Seed+int64(m.gen))
	return nil
}

// viewportFor sizes the field for a width x height terminal: one HUD row
// on top, the help line at the bottom.
func (m Model) viewportFor(width, height int) Viewport {
	return NewViewport(width, height-1-hudRows, m.cfg.World.Width, m.cfg.World.Height)
}

// Session returns the running session.
func (m Model) Session() *chase.Session { return m.session }

// Snapshot returns the latest frame.
func (m Model) Snapshot() chase.Snapshot { return m.snap }

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case restartMsg:
		if msg.gen == m.gen && m.snap.State.Terminal() {
			return m.restart()
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "session", m.gen, "state", m.snap.State)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(screenshotDir()); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case key.Matches(msg, m.keys.Up):
		m.nudge(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.nudge(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.nudge(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.nudge(1, 0)
	}
	return m, nil
}

// handleMouse points the character at the cell under a pressed or dragged
// left button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		m.session.SetMoveTarget(m.view.CellToWorld(msg.X, msg.Y))
	}
	return m, nil
}

// nudge shifts the move target by nudgeCells in the given direction,
// starting from the character when no target was set yet.
func (m Model) nudge(dx, dy float64) {
	base, ok := m.session.MoveTarget()
	if !ok {
		base = m.snap.Character.Pos
	}
	step := m.view.CellStep().Scale(nudgeCells)
	area := m.session.Area()
	target := core.V(
		core.ClampF(base.X+dx*step.X, 0, m.cfg.World.Width),
		core.ClampF(base.Y+dy*step.Y, area.MinY(), area.MaxY()),
	)
	m.session.SetMoveTarget(target)
}

// handleResize processes window resize events. The session keeps running;
// only the mapping from world to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.view = m.viewportFor(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the session and reports what happened in the frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	wasOver := m.snap.State.Terminal()
	m.snap = m.session.Step(now)

	if m.snap.CollectedDelta > 0 {
		m.logger.Debug("collected", "session", m.gen, "total", m.snap.Collected)
	}
	if m.snap.HitDelta > 0 {
		m.logger.Info("hit", "session", m.gen, "lives", m.snap.Lives)
	}

	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}
	if !wasOver && m.snap.State.Terminal() {
		m.endedAt = now
		m.keys.Restart.SetEnabled(true)
		m.logger.Info("session ended",
			"session", m.gen,
			"state", m.snap.State,
			"collected", m.snap.Collected,
			"lives", m.snap.Lives,
			"elapsed", fmt.Sprintf("%.1fs", m.snap.Elapsed),
		)
		cmds = append(cmds, restartCmd(restartDelay, m.gen))
	}
	return m, tea.Batch(cmds...)
}

// restart begins the next session. The frame loop is already running.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen++
	if err := m.startSession(); err != nil {
		m.logger.Error("restart failed", "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// screenshotDir is where ctrl+s drops plain-text frames.
func screenshotDir() string {
	return filepath.Join(os.Getenv("HOME"), ".conga", "screenshots")
}

// saveScreenshot writes the current frame as plain text into dir.
func (m Model) saveScreenshot(dir string) (string, error) {
	drawFrame(m.screen, m.view, m.snap, m.session.Area(), m.session.Config().Character.FlagDuration)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	stamp := m.now
	if stamp.IsZero() {
		stamp = time.Now()
	}
	path := filepath.Join(dir, fmt.Sprintf("conga_%d_%s.txt", m.gen, stamp.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// restartIn returns the time left before the automatic restart.
func (m Model) restartIn() time.Duration {
	if m.endedAt.IsZero() {
		return restartDelay
	}
	return max(restartDelay-m.now.Sub(m.endedAt), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.view, m.snap, m.session.Area(), m.session.Config().Character.FlagDuration)
	if m.snap.State.Terminal() {
		drawSummary(m.screen, m.snap, m.restartIn())
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and drag steer the character
	)

	_, err = p.Run()
	return err
}
