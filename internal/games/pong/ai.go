package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Opponent steers the right paddle toward where it expects the ball.
//
// A prediction is made once per ball velocity: while the velocity matches
// the memo the target is reused, so random error is drawn only when the
// ball changes course. Hard and Impossible predict once more per approach
// inside the re-targeting band.
type Opponent struct {
	profile config.DifficultyProfile
	rng     *rand.Rand
	arena   Arena

	target     float64
	lastVX     float64
	lastVY     float64
	memo       bool
	retargeted bool
}

// NewOpponent creates an opponent for a difficulty. rng supplies the
// prediction error and must not be shared with other goroutines.
func NewOpponent(d config.Difficulty, rng *rand.Rand, arena Arena) *Opponent {
	o := &Opponent{
		profile: d.Profile(),
		rng:     rng,
		arena:   arena,
	}
	o.idle()
	return o
}

// Target returns the current target y for the paddle's top edge.
func (o *Opponent) Target() float64 {
	return o.target
}

// idle aims at the vertical centre and forgets the memoized velocity.
func (o *Opponent) idle() {
	o.target = o.arena.H/2 - PaddleHeight/2
	o.memo = false
	o.retargeted = false
}

// UpdateTarget refreshes the target for paddle p given the ball state.
func (o *Opponent) UpdateTarget(b Ball, p Paddle, paused bool) float64 {
	if paused || b.VX <= 0 {
		o.idle()
		return o.target
	}

	dist := p.X - b.X
	switch {
	case !o.memo || b.VX != o.lastVX || b.VY != o.lastVY:
		o.predict(b, p)
	case o.profile.Retarget && !o.retargeted && dist > RetargetNear && dist < RetargetFar:
		o.retargeted = true
		o.predict(b, p)
	}
	return o.target
}

// predict extrapolates the ball to the paddle face and adds random error
// scaled by the difficulty.
func (o *Opponent) predict(b Ball, p Paddle) {
	t := (p.X - b.Rect().Right()) / b.VX
	target := b.Y + b.VY*t + b.Size/2 - p.H/2

	if offset := o.profile.OffsetFraction * p.H; offset > 0 {
		target += (o.rng.Float64()*2 - 1) * offset
	}

	o.target = target
	o.lastVX = b.VX
	o.lastVY = b.VY
	o.memo = true
}

// Move updates the target and steps paddle p toward it for dt seconds.
func (o *Opponent) Move(p *Paddle, b Ball, paused bool, dt float64) {
	target := o.UpdateTarget(b, *p, paused)
	speed := PaddleSpeed * o.profile.SpeedMultiplier
	p.Y = Steer(p.Y, target, speed, dt, o.arena.H-p.H)
}

// Steer moves y toward target by at most speed*dt without overshooting,
// then clamps the result to [0, maxY].
func Steer(y, target, speed, dt, maxY float64) float64 {
	dir := core.Sign(target - y)
	next := y + dir*speed*dt
	if (dir > 0 && next > target) || (dir < 0 && next < target) {
		next = target
	}
	return core.ClampF(next, 0, maxY)
}
