package pong

import "math"

// Snapshot is a compact copy of the match state. Positions and velocities
// are scaled by 1000 and truncated so snapshots compare exactly.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallVX   int
	BallVY   int
	LeftY    int
	RightY   int
	AITarget int
	Score1   int
	Score2   int
	Over     bool
	Result   Result
}

func scaled(v float64) int {
	return int(math.Trunc(v * 1000))
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		BallX:    scaled(g.ball.X),
		BallY:    scaled(g.ball.Y),
		BallVX:   scaled(g.ball.VX),
		BallVY:   scaled(g.ball.VY),
		LeftY:    scaled(g.left.Y),
		RightY:   scaled(g.right.Y),
		AITarget: scaled(g.ai.Target()),
		Score1:   g.left.Score,
		Score2:   g.right.Score,
		Over:     g.over,
		Result:   g.result,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.LeftY, snap.RightY, snap.AITarget,
		snap.Score1, snap.Score2, int(snap.Result),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Over {
		h = h*31 + 1
	}
	return h
}
