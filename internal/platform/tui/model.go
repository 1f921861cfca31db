package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Layout and timing constants
const (
	hudRows      = 2 // Score line above the arena, help line below
	meterWindow  = time.Second
	resultHold   = 2 * time.Second  // Minimum time a result screen stays up
	resultBudget = 10 * time.Second // Upper bound for the end-of-match jingles
)

// resultDoneMsg ends the result screen.
type resultDoneMsg struct{}

// Options configures a Model.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Difficulty config.Difficulty // Highlighted on the title screen
	Audio      audio.Sequencer   // nil = silent
	Logger     *log.Logger       // nil = discard
	Clock      core.Clock        // nil = system clock
}

// Model is the Bubble Tea model for a Pong session.
type Model struct {
	cfg     config.Config
	keys    KeyMap
	help    help.Model
	levels  table.Model
	session *pong.Session
	audio   audio.Sequencer
	logger  *log.Logger

	clock   core.Clock
	stepper *core.Stepper
	latch   *core.Latch
	meter   *core.Meter
	canvas  *Canvas
	pending []core.Action // Presses waiting for the next step

	width    int
	height   int
	title    string // Last window title sent
	quitting bool
}

// NewModel creates a model on the title screen.
func NewModel(opts Options) Model {
	rt := opts.Runtime.ResolveSeed()
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}

	cfg := opts.Config
	arena := pong.DefaultArena()

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		cfg:     cfg,
		keys:    DefaultKeyMap(cfg.Match.Mode),
		help:    h,
		levels:  newLevelTable(opts.Difficulty),
		session: pong.NewSession(pong.OptionsFromConfig(cfg, rt.Seed), opts.Audio, opts.Logger),
		audio:   opts.Audio,
		logger:  opts.Logger,
		clock:   opts.Clock,
		stepper: core.NewStepper(opts.Clock, cfg.Loop.TickRate, cfg.Loop.MaxCatchUp),
		latch:   core.NewLatch(cfg.Input.HoldWindow),
		meter:   core.NewMeter(meterWindow),
		canvas:  NewCanvas(rt.ScreenW, max(rt.ScreenH-hudRows, 1), arena),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.Loop.TickRate), tea.SetWindowTitle(m.windowTitle()))
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

	case resultDoneMsg:
		m.session.ReturnToTitle()
		cmd := m.syncTitle()
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch m.session.Screen() {
	case pong.ScreenTitle:
		return m.handleTitleKey(msg, action)

	case pong.ScreenPlaying:
		if action == core.ActionBack {
			m.session.Abort()
			m.latch.Reset()
			m.pending = m.pending[:0]
			cmd := m.syncTitle()
			return m, cmd
		}
		if key.Matches(msg, m.keys.Restart) {
			m.session.Reset()
			m.latch.Reset()
			m.stepper.Reset()
			m.pending = m.pending[:0]
			cmd := m.syncTitle()
			return m, cmd
		}
		if action != core.ActionNone && action != core.ActionConfirm {
			m.pending = append(m.pending, action)
		}
	}

	// Result screens wait for the end-of-match sequence
	return m, nil
}

// handleTitleKey picks a difficulty. Digits start that level, navigation
// moves the highlight, confirm starts the highlighted level and any other
// key starts on Easy.
func (m Model) handleTitleKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Difficulty):
		return m.start(config.DifficultyForKey(msg.String()))
	case action == core.ActionUp || action == core.ActionUp2:
		m.levels.MoveUp(1)
		return m, nil
	case action == core.ActionDown || action == core.ActionDown2:
		m.levels.MoveDown(1)
		return m, nil
	case action == core.ActionConfirm:
		return m.start(config.Difficulty(m.levels.Cursor()))
	case action == core.ActionBack:
		return m, nil
	}
	return m.start(config.DifficultyEasy)
}

// start begins a match with a fresh loop state.
func (m Model) start(d config.Difficulty) (tea.Model, tea.Cmd) {
	m.levels.SetCursor(int(d))
	m.session.Start(d)
	m.latch.Reset()
	m.stepper.Reset()
	m.pending = m.pending[:0]
	cmd := m.syncTitle()
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.canvas.Resize(msg.Width, max(msg.Height-hudRows, 1))
	return m, nil
}

// handleTick runs every simulation step that is due, then draws one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.cfg.Loop.TickRate)}

	steps := m.stepper.Advance()
	for range steps {
		if m.session.Screen() != pong.ScreenPlaying {
			break
		}

		now := m.clock.Now()
		m.latch.Expire(now)
		for _, a := range m.pending {
			m.latch.Press(a, now)
		}
		m.pending = m.pending[:0]

		ev := m.session.Tick(m.stepper.Dt(), m.latch)
		m.meter.Mark(m.clock.Now())

		if ev.Scored {
			cmds = append(cmds, m.syncTitle())
		}
		if ev.Over {
			cmds = append(cmds, resultSequenceCmd(m.audio, ev.Result, resultHold, m.logger))
			break
		}
	}

	m.session.Draw(m.canvas)
	return m, tea.Batch(cmds...)
}

// syncTitle returns a command that updates the terminal title when the
// score line changed.
func (m *Model) syncTitle() tea.Cmd {
	title := m.windowTitle()
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}

func (m Model) windowTitle() string {
	game := m.session.Game()
	if game == nil || m.session.Screen() == pong.ScreenTitle {
		return "Pong"
	}
	left, right := game.Scores()
	return fmt.Sprintf("Pong | Score: %02d - %02d", left, right)
}

// resultSequenceCmd plays the game-over sound and then the win or lose
// jingle, keeping the result screen up for at least hold.
func resultSequenceCmd(seq audio.Sequencer, result pong.Result, hold time.Duration, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), resultBudget)
		defer cancel()

		jingle := audio.SoundLose
		if result == pong.ResultWin || result == pong.ResultBestWin {
			jingle = audio.SoundWin
		}
		for _, id := range []audio.SoundID{audio.SoundGameOver, jingle} {
			if err := seq.PlayAndWait(ctx, id); err != nil {
				logger.Warn("result sound interrupted", "sound", id, "error", err)
				break
			}
		}

		if rest := hold - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
		return resultDoneMsg{}
	}
}

// saveScreenshot writes the last frame as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch screen := m.session.Screen(); {
	case screen == pong.ScreenPlaying:
		return m.playingView()
	case screen.IsResult():
		return m.resultView(screen)
	default:
		return m.titleView()
	}
}

// Session returns the underlying session.
func (m Model) Session() *pong.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
