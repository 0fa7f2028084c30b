package dodger

import "github.com/vovakirdan/dodger/internal/core"

// Canvas is the drawing surface the session renders into every frame.
// Coordinates are virtual canvas pixels; frontends scale as needed.
type Canvas interface {
	// Clear fills the whole surface with a color.
	Clear(c core.Color)
	// FillRect draws a solid rectangle.
	FillRect(r core.Rect, c core.Color)
	// StrokeRect draws a rectangle outline.
	StrokeRect(r core.Rect, c core.Color)
	// Line draws a straight line between two points.
	Line(x0, y0, x1, y1 float64, c core.Color)
	// GradientV fills a rectangle blending from top to bottom.
	GradientV(r core.Rect, top, bottom core.Color)
	// Text draws a string with its top-left corner at (x, y). Size is the
	// font height in canvas pixels.
	Text(s string, x, y, size float64, c core.Color)
}

// Jukebox is the background music collaborator. Update is called once per
// frame regardless of the session phase.
type Jukebox interface {
	Update() error
}

// HighscoreSaver persists a new best score.
type HighscoreSaver interface {
	Save(score int) error
}
