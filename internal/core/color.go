package core

// Color is the foreground color of a screen cell.
// The platform maps it to ANSI 256-color codes.
type Color uint8

// Colors used by the game.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorCyan
	ColorYellow
	ColorGreen
	ColorRed
	ColorMagenta
)
