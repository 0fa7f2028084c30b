package tui

import (
	"math"

	"github.com/vovakirdan/dodger/internal/core"
)

// Runes used to approximate the window scenery on a character grid.
const (
	runeSolid   = '█'
	runeShade   = '░'
	runeLine    = '·'
	runeNothing = ' '
)

// ScreenCanvas scales the session's virtual canvas onto a character Screen.
// The terminal has no background color, so the backdrop color is left blank.
type ScreenCanvas struct {
	screen     *core.Screen
	sx, sy     float64
	background core.Color
}

// NewScreenCanvas maps a virtual canvas of width×height pixels onto screen.
func NewScreenCanvas(screen *core.Screen, width, height float64) *ScreenCanvas {
	c := &ScreenCanvas{screen: screen}
	c.SetVirtualSize(width, height)
	return c
}

// SetVirtualSize recomputes the scale, e.g. after the screen was resized.
func (c *ScreenCanvas) SetVirtualSize(width, height float64) {
	c.sx = float64(c.screen.Width()) / width
	c.sy = float64(c.screen.Height()) / height
}

// span converts a virtual [pos, pos+size) interval to cells, at least one wide.
func span(pos, size, scale float64) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Ceil((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end - start
}

func (c *ScreenCanvas) cell(x, y float64) (int, int) {
	return int(math.Floor(x * c.sx)), int(math.Floor(y * c.sy))
}

func (c *ScreenCanvas) Clear(col core.Color) {
	c.background = col
	c.screen.Clear()
}

func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	x, w := span(r.X, r.W, c.sx)
	y, h := span(r.Y, r.H, c.sy)
	c.screen.DrawRect(x, y, w, h, runeSolid, col)
}

func (c *ScreenCanvas) StrokeRect(r core.Rect, col core.Color) {
	x, w := span(r.X, r.W, c.sx)
	y, h := span(r.Y, r.H, c.sy)
	c.screen.DrawBox(x, y, w, h, col)
}

func (c *ScreenCanvas) Line(x0, y0, x1, y1 float64, col core.Color) {
	cx0, cy0 := c.cell(x0, y0)
	cx1, cy1 := c.cell(x1, y1)
	c.screen.DrawLine(cx0, cy0, cx1, cy1, runeLine, col)
}

// GradientV shades the upper part of the rectangle with the top color and
// the lower part with the bottom color. The backdrop color stays blank.
func (c *ScreenCanvas) GradientV(r core.Rect, top, bottom core.Color) {
	x, w := span(r.X, r.W, c.sx)
	y, h := span(r.Y, r.H, c.sy)
	for row := 0; row < h; row++ {
		col := top
		if float64(row)/float64(h) >= 0.5 {
			col = bottom
		}
		fill := runeShade
		if col == c.background {
			fill = runeNothing
		}
		c.screen.DrawRect(x, y+row, w, 1, fill, col)
	}
}

// Text ignores the size; every string is one row tall.
func (c *ScreenCanvas) Text(s string, x, y, size float64, col core.Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawText(cx, cy, s, col)
}
