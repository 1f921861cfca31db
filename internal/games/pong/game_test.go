package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/audio/audiotest"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// leftGoalBall crosses the left goal line on the next tick, far from the paddle.
func leftGoalBall() Ball {
	return Ball{X: 21, Y: 600, VX: -BallSpeed, Size: BallSize, Speed: BallSpeed}
}

// rightGoalBall crosses the right goal line on the next tick, far from the paddle.
func rightGoalBall() Ball {
	return Ball{X: 1245, Y: 100, VX: BallSpeed, Size: BallSize, Speed: BallSpeed}
}

func TestNewGameLayout(t *testing.T) {
	g := NewGame(testOptions())

	if g.left.X != 20 || g.right.X != 1250 {
		t.Errorf("paddle x = (%v, %v), expected (20, 1250)", g.left.X, g.right.X)
	}
	if g.left.Y != 335 || g.right.Y != 335 {
		t.Errorf("paddle y = (%v, %v), expected (335, 335)", g.left.Y, g.right.Y)
	}
	b := g.Ball()
	if b.X != 640 || b.Y != 360 || b.VX != -BallSpeed || b.VY != 0 {
		t.Errorf("ball = %+v, expected at the centre moving left", b)
	}
	if l, r := g.Scores(); l != 0 || r != 0 {
		t.Errorf("Scores() = (%d, %d), expected (0, 0)", l, r)
	}
	if g.Over() || g.Result() != ResultNone {
		t.Error("new game should not be over")
	}
}

func TestMatchEndsWithLoss(t *testing.T) {
	g := NewGame(testOptions())
	g.right.Score = 11
	g.ball = leftGoalBall()
	rec := &audiotest.Recorder{}

	ev := tickOnce(g, rec)

	if !ev.Over || ev.Result != ResultLose || ev.Scorer != SideRight {
		t.Fatalf("event = %+v, expected the AI to win", ev)
	}
	if !g.Over() || g.Result() != ResultLose {
		t.Errorf("Over() = %v, Result() = %v", g.Over(), g.Result())
	}
	if _, r := g.Scores(); r != 12 {
		t.Errorf("right score = %d, expected 12", r)
	}
	if n := rec.Count(audio.SoundScoreRight); n != 0 {
		t.Errorf("score sound played %d times on the final point, expected 0", n)
	}

	// Motion halts once the match is over
	before := g.Snapshot()
	if ev := tickOnce(g, rec); ev != (Event{}) {
		t.Errorf("tick after the end returned %+v", ev)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("state changed after the end:\n%+v\n%+v", before, after)
	}
}

func TestMatchWinResults(t *testing.T) {
	tests := []struct {
		name       string
		mode       config.Mode
		difficulty config.Difficulty
		expected   Result
	}{
		{"normal AI", config.ModeAI, config.DifficultyNormal, ResultWin},
		{"hard AI", config.ModeAI, config.DifficultyHard, ResultWin},
		{"impossible AI", config.ModeAI, config.DifficultyImpossible, ResultBestWin},
		{"versus", config.ModeVersus, config.DifficultyImpossible, ResultWin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions()
			opts.Mode = tc.mode
			opts.Difficulty = tc.difficulty
			g := NewGame(opts)
			g.left.Score = 11
			g.ball = rightGoalBall()

			ev := tickOnce(g, &audiotest.Recorder{})

			if !ev.Over || ev.Result != tc.expected {
				t.Errorf("event = %+v, expected result %v", ev, tc.expected)
			}
		})
	}
}

func TestUnboundedMatch(t *testing.T) {
	opts := testOptions()
	opts.WinScore = 0
	g := NewGame(opts)
	g.left.Score = 100
	g.ball = rightGoalBall()
	rec := &audiotest.Recorder{}

	ev := tickOnce(g, rec)

	if !ev.Scored || ev.Over {
		t.Errorf("event = %+v, expected a point without an end", ev)
	}
	if l, _ := g.Scores(); l != 101 {
		t.Errorf("left score = %d, expected 101", l)
	}
	if rec.Count(audio.SoundScoreLeft) != 1 {
		t.Errorf("played %v, expected one score-left", rec.Played())
	}
}

func TestSpeedUpPerPoint(t *testing.T) {
	tests := []struct {
		difficulty config.Difficulty
		expected   float64
	}{
		{config.DifficultyEasy, BallSpeed},
		{config.DifficultyNormal, BallSpeed},
		{config.DifficultyHard, BallSpeed + BallSpeedStep},
		{config.DifficultyImpossible, BallSpeed + BallSpeedStep},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			opts := testOptions()
			opts.Difficulty = tc.difficulty
			g := NewGame(opts)
			g.ball = leftGoalBall()

			tickOnce(g, &audiotest.Recorder{})

			if g.ball.Speed != tc.expected {
				t.Errorf("speed = %v, expected %v", g.ball.Speed, tc.expected)
			}
			if got := g.ball.Velocity().Len(); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("|v| after serve = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHumanPaddleMovement(t *testing.T) {
	tests := []struct {
		name     string
		input    held
		expected float64
	}{
		{"up", held{core.ActionUp: true}, 335 - PaddleSpeed*testDt},
		{"down", held{core.ActionDown: true}, 335 + PaddleSpeed*testDt},
		{"both cancel", held{core.ActionUp: true, core.ActionDown: true}, 335},
		{"none", held{}, 335},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(testOptions())
			g.Tick(TickContext{Dt: testDt, Input: tc.input})
			if math.Abs(g.left.Y-tc.expected) > 1e-9 {
				t.Errorf("left y = %v, expected %v", g.left.Y, tc.expected)
			}
		})
	}
}

func TestHumanPaddleClamped(t *testing.T) {
	g := NewGame(testOptions())

	for i := 0; i < 40; i++ {
		g.Tick(TickContext{Dt: testDt, Input: held{core.ActionUp: true}})
	}
	if g.left.Y != 0 {
		t.Errorf("left y = %v after holding up, expected 0", g.left.Y)
	}

	g = NewGame(testOptions())
	for i := 0; i < 40; i++ {
		g.Tick(TickContext{Dt: testDt, Input: held{core.ActionDown: true}})
	}
	if g.left.Y != ArenaHeight-PaddleHeight {
		t.Errorf("left y = %v after holding down, expected %v", g.left.Y, ArenaHeight-PaddleHeight)
	}
}

func TestVersusRightPaddle(t *testing.T) {
	opts := testOptions()
	opts.Mode = config.ModeVersus
	g := NewGame(opts)

	g.Tick(TickContext{Dt: testDt, Input: held{}})
	if g.right.Y != 335 {
		t.Errorf("right y = %v without input, expected 335", g.right.Y)
	}

	g.Tick(TickContext{Dt: testDt, Input: held{core.ActionDown2: true}})
	if math.Abs(g.right.Y-(335+PaddleSpeed*testDt)) > 1e-9 {
		t.Errorf("right y = %v, expected one step down", g.right.Y)
	}
	if g.left.Y != 335 {
		t.Errorf("left y = %v, second player's keys moved the left paddle", g.left.Y)
	}
}

func TestNilInputAndAudio(t *testing.T) {
	g := NewGame(testOptions())
	g.ball = leftGoalBall()

	ev := g.Tick(TickContext{Dt: testDt})
	if !ev.Scored {
		t.Errorf("event = %+v, expected a point", ev)
	}
}

// script drives a deterministic rally with a left player who tracks the ball.
func script(g *Game, ticks int) []uint64 {
	hashes := make([]uint64, 0, ticks)
	for i := 0; i < ticks; i++ {
		in := held{}
		switch {
		case g.ball.Y < g.left.Y:
			in[core.ActionUp] = true
		case g.ball.Y > g.left.Y+g.left.H:
			in[core.ActionDown] = true
		}
		g.Tick(TickContext{Dt: testDt, Input: in})
		hashes = append(hashes, g.Snapshot().Hash())
	}
	return hashes
}

func TestDeterministicReplay(t *testing.T) {
	opts := testOptions()
	opts.WinScore = 0

	a := script(NewGame(opts), 1200)
	b := script(NewGame(opts), 1200)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: hashes differ (%d vs %d)", i, a[i], b[i])
		}
	}

	// Reset replays the same match
	g := NewGame(opts)
	script(g, 300)
	g.Reset()
	c := script(g, 1200)
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("after Reset, tick %d: hashes differ", i)
		}
	}
}

func TestSeedChangesAI(t *testing.T) {
	opts := testOptions()
	opts.WinScore = 0

	g1 := NewGame(opts)
	opts.Seed = 2
	g2 := NewGame(opts)

	differ := false
	for i := 0; i < 1200 && !differ; i++ {
		g1.Tick(TickContext{Dt: testDt})
		g2.Tick(TickContext{Dt: testDt})
		differ = g1.ai.Target() != g2.ai.Target()
	}
	if !differ {
		t.Error("different seeds produced identical AI targets")
	}
}
