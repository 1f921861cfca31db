package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Arena is the playing field.
type Arena struct {
	W, H float64
}

// DefaultArena returns the standard 1280x720 field.
func DefaultArena() Arena {
	return Arena{W: ArenaWidth, H: ArenaHeight}
}

// paddleMaxY is the lowest top position a paddle can take.
func (a Arena) paddleMaxY() float64 {
	return a.H - PaddleHeight
}

// BounceAngle returns the outgoing angle for a ball whose top edge is at
// ballY hitting a paddle centred at paddleCenterY. A hit above the centre
// gives a positive angle. The result is within [-MaxBounceAngle, MaxBounceAngle]
// and never zero.
func BounceAngle(paddleCenterY, ballY, paddleH float64) float64 {
	rel := paddleCenterY - ballY
	if rel == 0 {
		rel = IntersectEpsilon
	}
	angle := rel / (paddleH / 2) * MaxBounceAngle
	return core.ClampF(angle, -MaxBounceAngle, MaxBounceAngle)
}

// hitsPaddle reports whether the ball, moving for dt, meets the paddle
// defending side. Only a ball travelling toward the paddle can hit it.
func hitsPaddle(b Ball, p Paddle, side Side, dt float64) bool {
	next := b.projected(dt)
	pr := p.Rect()

	switch side {
	case SideLeft:
		if b.VX >= 0 || next.Right() < pr.X {
			return false
		}
		return next.X <= pr.Right() && next.OverlapsY(pr)
	case SideRight:
		if b.VX <= 0 || next.X > pr.Right() {
			return false
		}
		return next.Right() >= pr.X && next.OverlapsY(pr)
	}
	return false
}

// bounceOffPaddle sets the ball's velocity after a paddle hit. The speed
// magnitude stays equal to Ball.Speed.
func bounceOffPaddle(b *Ball, p Paddle, side Side) {
	angle := BounceAngle(p.CenterY(), b.Y, p.H)
	sin, cos := math.Sincos(angle)

	if side == SideLeft {
		b.VX = b.Speed * cos
		b.VY = -b.Speed * sin
		return
	}
	b.VX = -b.Speed * cos
	b.VY = b.Speed * sin
}

// bounceOffWalls keeps the ball inside the top and bottom walls.
// It reports whether the ball was reflected.
func bounceOffWalls(b *Ball, a Arena) bool {
	switch {
	case b.Y <= 0:
		b.Y = 0
		if b.VY < 0 {
			b.VY = -b.VY
			return true
		}
	case b.Y+b.Size >= a.H:
		b.Y = a.H - b.Size
		if b.VY > 0 {
			b.VY = -b.VY
			return true
		}
	}
	return false
}

// checkGoal reports which side scored, if the ball has fully passed a
// paddle's back line.
func checkGoal(b Ball, left, right Paddle) (Side, bool) {
	switch {
	case b.X < left.X:
		return SideRight, true
	case b.Rect().Right() > right.Rect().Right():
		return SideLeft, true
	}
	return SideLeft, false
}
