// Package pong implements the Pong simulation: ball and paddle physics,
// scoring, the AI opponent and the match session. It draws through the
// Renderer interface and plays sounds through audio.Player, so it has no
// terminal or device dependencies.
package pong

// Arena and entity dimensions in logical units (pixels of a 1280x720 field).
const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0

	PaddleInset  = 20.0 // Distance of each paddle's back face from its goal line
	PaddleWidth  = 10.0
	PaddleHeight = 50.0
	PaddleSpeed  = 600.0 // Units per second

	BallSize      = 10.0
	BallSpeed     = 575.0 // Units per second
	BallSpeedStep = 15.0  // Added per point on Hard and Impossible

	// MaxBounceAngle is the steepest outgoing angle off a paddle, in radians.
	MaxBounceAngle = 0.75
	// IntersectEpsilon replaces a dead-centre hit so the bounce is never flat.
	IntersectEpsilon = 0.1
)

// AI re-targeting band, measured from the AI paddle's face to the ball.
const (
	RetargetNear = 20 * BallSize
	RetargetFar  = 30 * BallSize
)

// Centre divider dashes.
const (
	dividerDash = 20.0
	dividerGap  = 20.0
)
