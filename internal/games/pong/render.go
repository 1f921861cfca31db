package pong

import (
	"math"
	"time"
)

// Renderer receives one frame of immediate-mode drawing in logical arena
// coordinates.
type Renderer interface {
	BeginFrame()
	DrawRect(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	Present()
}

// blinkPeriod is the on/off period of the ball while it waits to serve.
const blinkPeriod = 150 * time.Millisecond

// Draw renders the divider, both paddles and the ball as one frame.
func (g *Game) Draw(r Renderer) {
	r.BeginFrame()

	cx := g.arena.W / 2
	for y := 0.0; y < g.arena.H; y += dividerDash + dividerGap {
		r.DrawLine(cx, y, cx, math.Min(y+dividerDash, g.arena.H))
	}

	for _, p := range [2]Paddle{g.left, g.right} {
		r.DrawRect(p.X, p.Y, p.W, p.H)
	}

	// Blink during serve
	if !g.ball.Paused(g.now) || (g.now/blinkPeriod)%2 == 0 {
		r.DrawRect(g.ball.X, g.ball.Y, g.ball.Size, g.ball.Size)
	}

	r.Present()
}
