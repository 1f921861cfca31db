package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies a paddle and the half of the field it defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Ball is the moving square. X and Y are its top-left corner.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Speed  float64

	// PausedUntil is the simulation time before which the ball stays put.
	PausedUntil time.Duration
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Velocity returns the velocity vector.
func (b Ball) Velocity() core.Vec {
	return core.Vec{X: b.VX, Y: b.VY}
}

// Paused reports whether the ball is frozen at simulation time now.
func (b Ball) Paused(now time.Duration) bool {
	return now < b.PausedUntil
}

// projected returns the bounding box after moving for dt seconds.
func (b Ball) projected(dt float64) core.Rect {
	return b.Rect().Translate(b.VX*dt, b.VY*dt)
}

// Paddle is a vertical bat at a fixed x.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Score int
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterY returns the vertical midpoint.
func (p Paddle) CenterY() float64 {
	return p.Y + p.H/2
}
