package dodger

import "github.com/vovakirdan/dodger/internal/core"

// Racer is an obstacle vehicle that approaches the player through one lane
// group, one depth row at a time.
type Racer struct {
	lanes        *LaneTable
	group        LaneGroup
	position     int  // Depth index, 0 (farthest) to MaxDepth (nearest)
	cooldown     int  // Frames since the last depth advance
	interval     int  // Frames required between advances; lower is faster
	baseInterval int  // Interval restored on reset
	spawned      bool // Whether the racer is on the road
	color        core.Color
}

// NewRacer creates an idle racer for a lane group.
func NewRacer(lanes *LaneTable, group LaneGroup, baseInterval int) *Racer {
	return &Racer{
		lanes:        lanes,
		group:        group,
		interval:     baseInterval,
		baseInterval: baseInterval,
		color:        core.ColorBlue,
	}
}

// Group returns the racer's lane group.
func (r *Racer) Group() LaneGroup { return r.group }

// Position returns the current depth index.
func (r *Racer) Position() int { return r.position }

// Cooldown returns the frames elapsed since the last advance.
func (r *Racer) Cooldown() int { return r.cooldown }

// Interval returns the frames required between advances.
func (r *Racer) Interval() int { return r.interval }

// Spawned reports whether the racer is currently on the road.
func (r *Racer) Spawned() bool { return r.spawned }

// Color returns the racer's draw color.
func (r *Racer) Color() core.Color { return r.color }

// Rect returns the racer's rectangle at its current depth.
func (r *Racer) Rect() core.Rect {
	return r.lanes.Rect(r.group, r.position)
}

// Spawn puts the racer on the road. Spawning an already spawned racer
// has no effect.
func (r *Racer) Spawn() {
	r.spawned = true
}

// Tick advances the move cooldown by one frame.
func (r *Racer) Tick() {
	r.cooldown++
}

// Ready reports whether enough frames have elapsed to advance.
func (r *Racer) Ready() bool {
	return r.cooldown > r.interval
}

// Move advances one depth row and restarts the cooldown.
func (r *Racer) Move() {
	r.position++
	r.cooldown = 0
}

// Passed reports whether the racer has moved beyond the nearest row.
func (r *Racer) Passed() bool {
	return r.position > MaxDepth
}

// Collides reports whether the racer overlaps the given rectangle.
// A racer that is not spawned never collides.
func (r *Racer) Collides(other core.Rect) bool {
	return r.spawned && r.Rect().Intersects(other)
}

// SpeedUp lowers the interval by step without going below floor.
// Returns false when the interval is already at or below floor.
func (r *Racer) SpeedUp(step, floor int) bool {
	if r.interval <= floor {
		return false
	}
	r.interval = core.Max(r.interval-step, floor)
	return true
}

// Recycle returns a racer that passed the player to the idle pool:
// back to depth 0 with a fresh cooldown and no spawn flag. The interval
// is kept so difficulty carries over.
func (r *Racer) Recycle() {
	r.position = 0
	r.cooldown = 0
	r.spawned = false
}

// Reset restores the racer to its initial state, including its interval.
func (r *Racer) Reset() {
	r.Recycle()
	r.interval = r.baseInterval
}
