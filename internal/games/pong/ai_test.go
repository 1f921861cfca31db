package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func newTestOpponent(d config.Difficulty, seed int64) *Opponent {
	return NewOpponent(d, rand.New(rand.NewSource(seed)), DefaultArena())
}

func rightPaddle() Paddle {
	return Paddle{X: ArenaWidth - PaddleInset - PaddleWidth, Y: 335, W: PaddleWidth, H: PaddleHeight}
}

func TestSteerStaysInBounds(t *testing.T) {
	maxY := ArenaHeight - PaddleHeight

	tests := []struct {
		name   string
		start  float64
		target float64
		speed  float64
	}{
		{"target far above", 335, -1000, PaddleSpeed},
		{"target far below", 335, 5000, PaddleSpeed},
		{"fast paddle above", 10, -50, 2 * PaddleSpeed},
		{"fast paddle below", 660, 2000, 2 * PaddleSpeed},
		{"target inside", 0, 400, PaddleSpeed / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y := tc.start
			for i := 0; i < 200; i++ {
				y = Steer(y, tc.target, tc.speed, testDt, maxY)
				if y < 0 || y > maxY {
					t.Fatalf("tick %d: y = %v, expected within [0, %v]", i, y, maxY)
				}
			}
			want := math.Max(0, math.Min(tc.target, maxY))
			if y != want {
				t.Errorf("final y = %v, expected %v", y, want)
			}
		})
	}
}

func TestSteerSnapsToTarget(t *testing.T) {
	if y := Steer(100, 105, PaddleSpeed, testDt, 670); y != 105 {
		t.Errorf("Steer() = %v, expected to stop at 105", y)
	}
	if y := Steer(100, 95, PaddleSpeed, testDt, 670); y != 95 {
		t.Errorf("Steer() = %v, expected to stop at 95", y)
	}
	if y := Steer(100, 100, PaddleSpeed, testDt, 670); y != 100 {
		t.Errorf("Steer() = %v, expected to stay at 100", y)
	}
	if y := Steer(100, 300, PaddleSpeed, testDt, 670); math.Abs(y-109.6) > 1e-9 {
		t.Errorf("Steer() = %v, expected one step of 9.6", y)
	}
}

func TestOpponentIdleTarget(t *testing.T) {
	o := newTestOpponent(config.DifficultyNormal, 1)
	p := rightPaddle()
	idle := ArenaHeight/2 - PaddleHeight/2

	away := Ball{X: 640, Y: 100, VX: -575, VY: 200, Size: BallSize}
	if got := o.UpdateTarget(away, p, false); got != idle {
		t.Errorf("target with ball moving away = %v, expected %v", got, idle)
	}

	toward := Ball{X: 640, Y: 100, VX: 575, VY: 200, Size: BallSize}
	if got := o.UpdateTarget(toward, p, true); got != idle {
		t.Errorf("target with ball paused = %v, expected %v", got, idle)
	}
	if o.memo {
		t.Error("idle should clear the memoized velocity")
	}
}

func TestOpponentPredictionWithoutError(t *testing.T) {
	o := newTestOpponent(config.DifficultyImpossible, 1)
	p := rightPaddle()

	b := Ball{X: 640, Y: 360, VX: 575, VY: 0, Size: BallSize}
	if got := o.UpdateTarget(b, p, false); math.Abs(got-340) > 1e-9 {
		t.Errorf("flat prediction = %v, expected 340", got)
	}

	// A new velocity triggers a new prediction
	b.VY = 100
	tHit := (p.X - (b.X + b.Size)) / b.VX
	want := b.Y + b.VY*tHit + b.Size/2 - p.H/2
	if got := o.UpdateTarget(b, p, false); math.Abs(got-want) > 1e-9 {
		t.Errorf("angled prediction = %v, expected %v", got, want)
	}
}

func TestOpponentTargetIsMemoized(t *testing.T) {
	o := newTestOpponent(config.DifficultyEasy, 7)
	p := rightPaddle()

	b := Ball{X: 400, Y: 200, VX: 575, VY: 120, Size: BallSize}
	first := o.UpdateTarget(b, p, false)

	for i := 0; i < 20; i++ {
		b.X += b.VX * testDt
		b.Y += b.VY * testDt
		if got := o.UpdateTarget(b, p, false); got != first {
			t.Fatalf("step %d: target = %v, expected the memoized %v", i, got, first)
		}
	}
}

func TestOpponentErrorIsBounded(t *testing.T) {
	p := rightPaddle()
	b := Ball{X: 640, Y: 360, VX: 575, VY: 0, Size: BallSize}
	exact := 340.0

	for _, d := range config.Difficulties() {
		maxErr := d.Profile().OffsetFraction * PaddleHeight
		for seed := int64(1); seed <= 50; seed++ {
			o := newTestOpponent(d, seed)
			got := o.UpdateTarget(b, p, false)
			if math.Abs(got-exact) > maxErr+1e-9 {
				t.Errorf("%v seed %d: target error %v exceeds %v", d, seed, math.Abs(got-exact), maxErr)
			}
		}
	}
}

func TestOpponentRetargetBand(t *testing.T) {
	p := rightPaddle()

	tests := []struct {
		d            config.Difficulty
		wantRetarget bool
	}{
		{config.DifficultyEasy, false},
		{config.DifficultyNormal, false},
		{config.DifficultyHard, true},
		{config.DifficultyImpossible, true},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			o := newTestOpponent(tc.d, 3)

			b := Ball{X: p.X - 500, Y: 300, VX: 575, VY: 0, Size: BallSize}
			o.UpdateTarget(b, p, false)
			if o.retargeted {
				t.Fatal("retarget should not happen outside the band")
			}

			b.X = p.X - 250
			inBand := o.UpdateTarget(b, p, false)
			if o.retargeted != tc.wantRetarget {
				t.Errorf("retargeted = %v, expected %v", o.retargeted, tc.wantRetarget)
			}

			// Only once per approach
			b.X = p.X - 240
			if got := o.UpdateTarget(b, p, false); got != inBand {
				t.Errorf("second update inside the band changed the target: %v -> %v", inBand, got)
			}

			// Ball leaves; the next approach may retarget again
			o.UpdateTarget(Ball{X: 640, VX: -575, Size: BallSize}, p, false)
			if o.retargeted {
				t.Error("retarget flag should reset when the ball moves away")
			}
		})
	}
}

func TestOpponentMoveStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	maxY := ArenaHeight - PaddleHeight

	for _, d := range config.Difficulties() {
		o := newTestOpponent(d, 5)
		p := rightPaddle()
		for i := 0; i < 500; i++ {
			b := Ball{
				X:    rng.Float64() * ArenaWidth,
				Y:    rng.Float64()*2000 - 600,
				VX:   rng.Float64()*1200 - 600,
				VY:   rng.Float64()*4000 - 2000,
				Size: BallSize,
			}
			o.Move(&p, b, false, testDt)
			if p.Y < 0 || p.Y > maxY {
				t.Fatalf("%v step %d: paddle y = %v, expected within [0, %v]", d, i, p.Y, maxY)
			}
		}
	}
}
