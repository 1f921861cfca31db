package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Canvas draws the logical arena onto a character grid. Every shape covers
// at least one cell so thin paddles stay visible on small terminals.
type Canvas struct {
	screen *core.Screen
	arena  pong.Arena
	frame  string
}

// NewCanvas creates a canvas of cols x rows cells for the arena.
func NewCanvas(cols, rows int, arena pong.Arena) *Canvas {
	return &Canvas{
		screen: core.NewScreen(cols, rows),
		arena:  arena,
	}
}

// Resize changes the grid size. The next frame is drawn at the new scale.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.frame = ""
}

// Screen returns the cell buffer of the last frame.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Frame returns the styled output of the last presented frame.
func (c *Canvas) Frame() string {
	return c.frame
}

func (c *Canvas) scaleX() float64 { return float64(c.screen.Width()) / c.arena.W }
func (c *Canvas) scaleY() float64 { return float64(c.screen.Height()) / c.arena.H }

// span maps [from, from+size) in arena units to a cell range of at least one cell.
func span(from, size, scale float64) (int, int) {
	start := int(math.Floor(from * scale))
	end := int(math.Ceil((from + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// BeginFrame clears the grid.
func (c *Canvas) BeginFrame() {
	c.screen.Clear()
}

// DrawRect fills a solid block.
func (c *Canvas) DrawRect(x, y, w, h float64) {
	x0, x1 := span(x, w, c.scaleX())
	y0, y1 := span(y, h, c.scaleY())
	c.screen.FillRect(x0, y0, x1-x0, y1-y0, '█', core.ColorWhite)
}

// DrawLine draws a thin line. Axis-aligned lines use box-drawing runes.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	sx, sy := c.scaleX(), c.scaleY()

	switch {
	case x1 == x2:
		col := int(math.Floor(x1 * sx))
		r0, r1 := span(math.Min(y1, y2), math.Abs(y2-y1), sy)
		for row := r0; row < r1; row++ {
			c.screen.SetCell(col, row, '│', core.ColorGray)
		}
	case y1 == y2:
		row := int(math.Floor(y1 * sy))
		c0, c1 := span(math.Min(x1, x2), math.Abs(x2-x1), sx)
		for col := c0; col < c1; col++ {
			c.screen.SetCell(col, row, '─', core.ColorGray)
		}
	default:
		cx1, cy1 := x1*sx, y1*sy
		cx2, cy2 := x2*sx, y2*sy
		steps := int(math.Ceil(math.Max(math.Abs(cx2-cx1), math.Abs(cy2-cy1))))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(max(steps, 1))
			col := int(math.Floor(cx1 + (cx2-cx1)*t))
			row := int(math.Floor(cy1 + (cy2-cy1)*t))
			c.screen.SetCell(col, row, '·', core.ColorGray)
		}
	}
}

// Present styles the grid into the frame string.
func (c *Canvas) Present() {
	c.frame = RenderScreen(c.screen)
}
