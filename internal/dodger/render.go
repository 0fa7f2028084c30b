package dodger

import (
	"fmt"

	"github.com/vovakirdan/dodger/internal/core"
)

// Font sizes in canvas pixels.
const (
	fontHuge   = 124
	fontLarge  = 64
	fontNormal = 36
)

// Render draws the current phase into dst.
func (s *Session) Render(dst Canvas) {
	dst.Clear(core.ColorRayWhite)

	switch s.phase {
	case PhaseLogo:
		s.renderLogo(dst)
	case PhaseTitle:
		s.renderTitle(dst)
	case PhaseGame:
		s.renderGame(dst)
	case PhaseEnd:
		s.renderEnd(dst)
	}
}

func (s *Session) renderLogo(dst Canvas) {
	w, h := s.lanes.Size()
	f := float64(s.frameCounter)

	dst.Text("Loading", h/2, h/2, fontHuge, core.ColorDarkBlue)
	dst.Line(3*f, 0, 3*f, h, core.ColorDarkBlue)
	dst.Line(0, 2*f, w, 2*f, core.ColorDarkBlue)
}

func (s *Session) renderTitle(dst Canvas) {
	w, h := s.lanes.Size()
	dst.Text("Dodger", w*0.25, h*0.25, fontHuge, core.ColorDarkBlue)
	dst.Text("Press Space To Start", w*0.10, h/2, fontLarge, core.ColorDarkBlue)
}

func (s *Session) renderGame(dst Canvas) {
	w, h := s.lanes.Size()
	half := h / 2

	// sky and ground
	dst.GradientV(core.NewRect(0, 0, w, half), core.ColorDarkBlue, core.ColorRayWhite)
	dst.GradientV(core.NewRect(0, half, w, half), core.ColorRayWhite, core.ColorGray)

	dst.FillRect(s.player.Rect(), s.player.Color())

	s.renderRoad(dst)
	s.renderBuildings(dst)

	dst.Text(fmt.Sprintf("Dodges: %d", s.score), w*0.70, h*0.05, fontNormal, core.ColorRayWhite)
	dst.Text(fmt.Sprintf("Speed: %dmph", s.MPH()), w*0.70, h*0.10, fontNormal, core.ColorRayWhite)
	dst.Text(fmt.Sprintf("Distance: %d'", s.distance), w*0.70, h*0.15, fontNormal, core.ColorRayWhite)

	for _, r := range s.racers {
		if r.Spawned() {
			dst.FillRect(r.Rect(), r.Color())
		}
	}
}

func (s *Session) renderEnd(dst Canvas) {
	w, h := s.lanes.Size()

	s.renderRoad(dst)

	dst.Text("Highscore:", w*0.40, h*0.20, fontNormal, core.ColorDarkBlue)
	dst.Text(fmt.Sprintf("%d", s.highscore), w*0.61, h*0.20, fontNormal, core.ColorDarkBlue)
	dst.Text("Press R To Retry", w*0.35, h*0.30, fontNormal, core.ColorDarkBlue)
	dst.Text("Press ESC To Quit", w*0.35, h*0.40, fontNormal, core.ColorDarkBlue)
}

// renderRoad draws the horizon, both road edges and the two lane markers,
// all converging on the centre of the horizon.
func (s *Session) renderRoad(dst Canvas) {
	w, h := s.lanes.Size()
	cx, cy := w/2, h/2

	dst.Line(0, cy, w, cy, core.ColorDarkBlue)
	dst.Line(cx, cy, 0, h, core.ColorDarkBlue)
	dst.Line(cx, cy, w, h, core.ColorDarkBlue)

	dst.Line(cx, cy, w*0.30, h, core.ColorDarkBlue)
	dst.Line(cx, cy, w*0.70, h, core.ColorDarkBlue)
}

// renderBuildings draws two rows of outlined towers along the horizon.
func (s *Session) renderBuildings(dst Canvas) {
	w, h := s.lanes.Size()
	half := h / 2

	for i := 0; i < 10; i++ {
		y := float64(i * 30)
		fi := float64(i)
		dst.StrokeRect(core.NewRect(10*fi*fi, y, 50-fi, half-y), core.ColorDarkBlue)
		dst.StrokeRect(core.NewRect(w-100*fi, y, 50+fi, half-y), core.ColorDarkBlue)
	}
}
