package dodger

import "github.com/vovakirdan/dodger/internal/core"

// Player is the vehicle controlled by the user. It only ever shifts
// horizontally by whole lanes.
type Player struct {
	rect    core.Rect
	color   core.Color
	laneW   float64
	columns int
}

// NewPlayer places the player at the given lane column and row, counting
// rows up from the bottom edge of the canvas.
func NewPlayer(lanes *LaneTable, startColumn, startRow int) *Player {
	_, h := lanes.Size()
	laneW, laneH := lanes.LaneWidth(), lanes.LaneHeight()
	return &Player{
		rect:    core.NewRect(laneW*float64(startColumn), h-laneH*float64(startRow), laneW, laneH),
		color:   core.ColorDarkBlue,
		laneW:   laneW,
		columns: lanes.Columns(),
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Color returns the player's draw color.
func (p *Player) Color() core.Color {
	return p.color
}

// CanMoveLeft reports whether the player is right of the leftmost playable lane.
func (p *Player) CanMoveLeft() bool {
	return p.rect.X > p.rect.W
}

// CanMoveRight reports whether the player is left of the rightmost playable lane.
func (p *Player) CanMoveRight() bool {
	return p.rect.X < p.rect.W*float64(p.columns-2)
}

// MoveLeft shifts the player one lane left. Returns false at the left edge.
func (p *Player) MoveLeft() bool {
	if !p.CanMoveLeft() {
		return false
	}
	p.rect.X -= p.laneW
	return true
}

// MoveRight shifts the player one lane right. Returns false at the right edge.
func (p *Player) MoveRight() bool {
	if !p.CanMoveRight() {
		return false
	}
	p.rect.X += p.laneW
	return true
}
