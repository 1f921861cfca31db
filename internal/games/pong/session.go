package pong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Screen is the session's top-level state.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenWin
	ScreenBestWin
	ScreenLose
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenWin:
		return "win"
	case ScreenBestWin:
		return "best-win"
	case ScreenLose:
		return "lose"
	default:
		return "unknown"
	}
}

// IsResult reports whether s shows a match outcome.
func (s Screen) IsResult() bool {
	return s == ScreenWin || s == ScreenBestWin || s == ScreenLose
}

func screenForResult(r Result) Screen {
	switch r {
	case ResultWin:
		return ScreenWin
	case ResultBestWin:
		return ScreenBestWin
	case ResultLose:
		return ScreenLose
	default:
		return ScreenTitle
	}
}

// Session owns the match lifecycle: title screen, playing, result screens.
// It holds the game and the audio handle; nothing here is global.
type Session struct {
	opts    Options
	screen  Screen
	game    *Game
	matches int64

	audio  audio.Player
	logger *log.Logger
}

// NewSession creates a session on the title screen. A nil player is
// silent and a nil logger discards output.
func NewSession(opts Options, player audio.Player, logger *log.Logger) *Session {
	if player == nil {
		player = audio.Silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		opts:   opts,
		screen: ScreenTitle,
		audio:  player,
		logger: logger,
	}
}

// Start begins a new match at the given difficulty.
func (s *Session) Start(d config.Difficulty) {
	opts := s.opts
	opts.Difficulty = d
	opts.Seed = s.opts.Seed + s.matches
	s.matches++

	s.game = NewGame(opts)
	s.screen = ScreenPlaying
	s.audio.PlayOnce(audio.SoundStartup)

	s.logger.Info("match started",
		"difficulty", d,
		"mode", opts.Mode,
		"win_score", opts.WinScore,
		"seed", opts.Seed,
	)
}

// Reset restarts the current match at the same difficulty.
func (s *Session) Reset() {
	if s.game == nil {
		return
	}
	s.game.Reset()
	s.screen = ScreenPlaying
	s.logger.Debug("match reset")
}

// Abort leaves a running match for the title screen.
func (s *Session) Abort() {
	if s.screen != ScreenPlaying {
		return
	}
	left, right := s.game.Scores()
	s.logger.Info("match aborted", "left", left, "right", right)
	s.screen = ScreenTitle
}

// ReturnToTitle leaves a result screen.
func (s *Session) ReturnToTitle() {
	if s.screen.IsResult() {
		s.screen = ScreenTitle
	}
}

// Tick advances the running match. It does nothing outside ScreenPlaying.
func (s *Session) Tick(dt float64, in core.InputState) Event {
	if s.screen != ScreenPlaying || s.game == nil {
		return Event{}
	}

	ev := s.game.Tick(TickContext{Dt: dt, Input: in, Audio: s.audio})
	if ev.Scored {
		left, right := s.game.Scores()
		s.logger.Info("point", "scorer", ev.Scorer, "left", left, "right", right)
	}
	if ev.Over {
		s.screen = screenForResult(ev.Result)
		s.logger.Info("match over", "result", ev.Result, "difficulty", s.game.opts.Difficulty)
	}
	return ev
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Game returns the current match, or nil before the first start.
func (s *Session) Game() *Game { return s.game }

// Mode returns the configured mode.
func (s *Session) Mode() config.Mode { return s.opts.Mode }

// Draw renders the current match when there is one.
func (s *Session) Draw(r Renderer) {
	if s.game != nil {
		s.game.Draw(r)
	}
}
