// Package dodger implements the lane-based dodging game: the player, the
// approaching racers, and the session state machine that drives them.
// It draws through the Canvas interface and has no dependency on any
// windowing, terminal or audio library.
package dodger

import "github.com/vovakirdan/dodger/internal/core"

// LaneGroup selects one of the three lanes racers approach through.
type LaneGroup int

const (
	LaneLeft LaneGroup = iota
	LaneMiddle
	LaneRight
)

// LaneGroups lists every lane group in drive order.
var LaneGroups = [...]LaneGroup{LaneLeft, LaneMiddle, LaneRight}

// String returns the lane name.
func (g LaneGroup) String() string {
	switch g {
	case LaneLeft:
		return "left"
	case LaneMiddle:
		return "middle"
	case LaneRight:
		return "right"
	default:
		return "unknown"
	}
}

// DepthRows is the number of depth positions a racer passes through.
// Depth 0 is the farthest (smallest) row, MaxDepth the nearest.
const DepthRows = 5

// MaxDepth is the nearest depth index, where collisions with the player happen.
const MaxDepth = DepthRows - 1

// Perspective factors, nearest row first. Each lane converges on the
// vanishing point at the centre of the horizon.
var (
	rowScale   = [DepthRows]float64{1, 0.75, 0.50, 0.25, 0.12}
	rowOffsetY = [DepthRows]float64{1, 2, 3, 4, 4.5}
	laneX      = [3][DepthRows]float64{
		LaneLeft:   {0.5, 1, 1.5, 2, 2.25},
		LaneMiddle: {2, 2.12, 2.25, 2.37, 2.44},
		LaneRight:  {3.5, 3.25, 3.0, 2.75, 2.63},
	}
)

// LaneTable holds the precomputed racer rectangles for every
// (lane group, depth) pair. It is built once and never mutated, so every
// racer shares the same table by pointer.
type LaneTable struct {
	rects   [3][DepthRows]core.Rect
	width   float64
	height  float64
	laneW   float64
	laneH   float64
	columns int
}

// NewLaneTable computes the lane geometry for a canvas of the given size.
// Lane width is width/columns and lane height is (height/2)/rows, both in
// whole pixels.
func NewLaneTable(width, height, columns, rows int) *LaneTable {
	laneW := float64(width / columns)
	laneH := float64((height / 2) / rows)

	t := &LaneTable{
		width:   float64(width),
		height:  float64(height),
		laneW:   laneW,
		laneH:   laneH,
		columns: columns,
	}

	for _, g := range LaneGroups {
		for row := 0; row < DepthRows; row++ {
			// row counts from the nearest; depth counts from the farthest
			depth := MaxDepth - row
			t.rects[g][depth] = core.NewRect(
				laneW*laneX[g][row],
				t.height-laneH*rowOffsetY[row],
				laneW*rowScale[row],
				laneH*rowScale[row],
			)
		}
	}
	return t
}

// Rect returns the racer rectangle for a lane group at a depth.
// Depth is clamped to [0, MaxDepth].
func (t *LaneTable) Rect(g LaneGroup, depth int) core.Rect {
	depth = core.Clamp(depth, 0, MaxDepth)
	return t.rects[g][depth]
}

// LaneWidth returns the width of one lane column in pixels.
func (t *LaneTable) LaneWidth() float64 { return t.laneW }

// LaneHeight returns the height of one lane row in pixels.
func (t *LaneTable) LaneHeight() float64 { return t.laneH }

// Columns returns the number of lane columns.
func (t *LaneTable) Columns() int { return t.columns }

// Size returns the canvas dimensions the table was built for.
func (t *LaneTable) Size() (float64, float64) { return t.width, t.height }
