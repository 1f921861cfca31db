package pong

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Result is the outcome of a finished match, seen from the left player.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultBestWin // Win against the Impossible AI
	ResultLose
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultBestWin:
		return "best-win"
	case ResultLose:
		return "lose"
	default:
		return "none"
	}
}

// Options configures a match.
type Options struct {
	Mode       config.Mode
	Difficulty config.Difficulty
	WinScore   int // 0 = unbounded
	ServeDelay time.Duration
	StartDelay time.Duration
	Seed       int64
}

// OptionsFromConfig builds match options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, seed int64) Options {
	return Options{
		Mode:       cfg.Match.Mode,
		WinScore:   cfg.Match.WinScore,
		ServeDelay: cfg.Match.ServeDelay,
		StartDelay: cfg.Match.StartDelay,
		Seed:       seed,
	}
}

// TickContext carries everything a tick needs from outside the simulation.
type TickContext struct {
	Dt    float64 // Fixed step in seconds
	Input core.InputState
	Audio audio.Player
}

// Event reports what a tick changed at the match level.
type Event struct {
	Scored bool
	Scorer Side
	Over   bool
	Result Result
}

// Game is one match: two paddles, the ball, scores and the AI.
type Game struct {
	opts    Options
	profile config.DifficultyProfile
	arena   Arena

	ball  Ball
	left  Paddle
	right Paddle
	ai    *Opponent
	rng   *rand.Rand

	now    time.Duration // Simulation time
	ticks  uint64
	over   bool
	result Result
}

// NewGame creates a match ready to play.
func NewGame(opts Options) *Game {
	g := &Game{
		opts:    opts,
		profile: opts.Difficulty.Profile(),
		arena:   DefaultArena(),
	}
	g.Reset()
	return g
}

// Reset restarts the match: scores, positions, ball speed and the AI.
// The ball waits for the start delay before moving.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.opts.Seed)) //nolint:gosec // gameplay randomness
	g.ai = NewOpponent(g.opts.Difficulty, g.rng, g.arena)

	g.left = Paddle{X: PaddleInset, W: PaddleWidth, H: PaddleHeight}
	g.right = Paddle{X: g.arena.W - PaddleInset - PaddleWidth, W: PaddleWidth, H: PaddleHeight}
	g.centerPaddles()

	g.now = 0
	g.ticks = 0
	g.over = false
	g.result = ResultNone

	g.ball = Ball{
		X:           g.arena.W / 2,
		Y:           g.arena.H / 2,
		VX:          -BallSpeed,
		Size:        BallSize,
		Speed:       BallSpeed,
		PausedUntil: g.opts.StartDelay,
	}
}

func (g *Game) centerPaddles() {
	y := g.arena.H/2 - PaddleHeight/2
	g.left.Y = y
	g.right.Y = y
}

// serve puts the ball back in the centre, heading diagonally toward the
// side that conceded, and pauses it for the serve delay.
func (g *Game) serve(toward Side) {
	g.centerPaddles()

	bu := g.ball.Speed / math.Sqrt2
	vx := bu
	if toward == SideLeft {
		vx = -bu
	}

	g.ball.X = g.arena.W / 2
	g.ball.Y = g.arena.H / 2
	g.ball.VX = vx
	g.ball.VY = bu
	g.ball.PausedUntil = g.now + g.opts.ServeDelay
}

// Tick advances the match by one fixed step.
func (g *Game) Tick(ctx TickContext) Event {
	if g.over {
		return Event{}
	}
	if ctx.Audio == nil {
		ctx.Audio = audio.Silent{}
	}

	dt := ctx.Dt
	g.ticks++
	g.now += time.Duration(dt * float64(time.Second))
	paused := g.ball.Paused(g.now)

	g.moveHuman(&g.left, ctx.Input, core.ActionUp, core.ActionDown, dt)
	if g.opts.Mode == config.ModeVersus {
		g.moveHuman(&g.right, ctx.Input, core.ActionUp2, core.ActionDown2, dt)
	} else {
		g.ai.Move(&g.right, g.ball, paused, dt)
	}

	if paused {
		return Event{}
	}
	return g.stepBall(ctx, dt)
}

// moveHuman steps a player paddle from the held directions.
func (g *Game) moveHuman(p *Paddle, in core.InputState, up, down core.Action, dt float64) {
	if in == nil {
		return
	}
	dir := 0.0
	if in.IsHeld(up) {
		dir--
	}
	if in.IsHeld(down) {
		dir++
	}
	p.Y = core.ClampF(p.Y+dir*PaddleSpeed*dt, 0, g.arena.paddleMaxY())
}

// stepBall runs collision, integration and scoring for one step.
func (g *Game) stepBall(ctx TickContext, dt float64) Event {
	b := &g.ball

	if hitsPaddle(*b, g.left, SideLeft, dt) {
		bounceOffPaddle(b, g.left, SideLeft)
		ctx.Audio.PlayOnce(audio.SoundBounce)
	}
	if hitsPaddle(*b, g.right, SideRight, dt) {
		bounceOffPaddle(b, g.right, SideRight)
		ctx.Audio.PlayOnce(audio.SoundBounce)
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt
	if bounceOffWalls(b, g.arena) {
		ctx.Audio.PlayOnce(audio.SoundBounce)
	}

	scorer, ok := checkGoal(*b, g.left, g.right)
	if !ok {
		return Event{}
	}
	return g.score(ctx, scorer)
}

// score awards a point, ends the match when the threshold is reached and
// otherwise serves toward the side that conceded.
func (g *Game) score(ctx TickContext, scorer Side) Event {
	ev := Event{Scored: true, Scorer: scorer}

	if scorer == SideLeft {
		g.left.Score++
	} else {
		g.right.Score++
	}
	if g.profile.SpeedUpPerPoint {
		g.ball.Speed += BallSpeedStep
	}

	if result := g.checkWin(); result != ResultNone {
		g.over = true
		g.result = result
		ev.Over = true
		ev.Result = result
		return ev
	}

	if scorer == SideLeft {
		ctx.Audio.PlayOnce(audio.SoundScoreLeft)
	} else {
		ctx.Audio.PlayOnce(audio.SoundScoreRight)
	}
	g.serve(scorer.Other())
	return ev
}

// checkWin returns the result once either side reaches the win score.
func (g *Game) checkWin() Result {
	if g.opts.WinScore <= 0 {
		return ResultNone
	}
	switch {
	case g.left.Score >= g.opts.WinScore:
		if g.opts.Mode != config.ModeVersus && g.opts.Difficulty == config.DifficultyImpossible {
			return ResultBestWin
		}
		return ResultWin
	case g.right.Score >= g.opts.WinScore:
		return ResultLose
	}
	return ResultNone
}

// Ball returns the ball state.
func (g *Game) Ball() Ball { return g.ball }

// Left returns the left paddle.
func (g *Game) Left() Paddle { return g.left }

// Right returns the right paddle.
func (g *Game) Right() Paddle { return g.right }

// Scores returns the left and right scores.
func (g *Game) Scores() (left, right int) { return g.left.Score, g.right.Score }

// Over reports whether the match has finished.
func (g *Game) Over() bool { return g.over }

// Result returns the match outcome, or ResultNone while playing.
func (g *Game) Result() Result { return g.result }

// Now returns the simulation time.
func (g *Game) Now() time.Duration { return g.now }

// Options returns the match options.
func (g *Game) Options() Options { return g.opts }

// Arena returns the field bounds.
func (g *Game) Arena() Arena { return g.arena }
