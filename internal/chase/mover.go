package chase

import (
	"github.com/vovakirdan/conga/internal/core"
)

// Character is the player-controlled entity.
type Character struct {
	Pos   core.Vec
	Vel   core.Vec
	Angle float64 // facing, radians; kept while standing still
	W, H  float64

	flagRemaining float64 // seconds left in the flagged state after a hit
}

// Bounds returns the character's axis-aligned bounding box.
func (c *Character) Bounds() core.RectF {
	return core.CenteredRect(c.Pos, c.W, c.H)
}

// Flagged reports whether the character was hit recently.
func (c *Character) Flagged() bool {
	return c.flagRemaining > 0
}

func (c *Character) flag(d float64) {
	c.flagRemaining = d
}

func (c *Character) tickFlag(dt float64) {
	c.flagRemaining = max(c.flagRemaining-dt, 0)
}

// Mover steers the character toward the latest target at constant speed.
type Mover struct {
	Speed float64 // units per second

	target    core.Vec
	hasTarget bool
}

// SetTarget replaces the current target. Last write wins.
func (m *Mover) SetTarget(p core.Vec) {
	m.target = p
	m.hasTarget = true
}

// Target returns the current target, if any.
func (m *Mover) Target() (core.Vec, bool) {
	return m.target, m.hasTarget
}

// Move advances c toward the target by at most Speed*dt.
// When the target is within reach the character snaps onto it and stops,
// which also covers a zero-length offset. Without a target Move does nothing.
func (m *Mover) Move(c *Character, dt float64) {
	if !m.hasTarget {
		return
	}

	offset := m.target.Sub(c.Pos)
	if offset.Len() <= m.Speed*dt {
		c.Pos = m.target
		c.Vel = core.Vec{}
		return
	}

	c.Vel = offset.Normalized().Scale(m.Speed)
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
	c.Angle = c.Vel.Angle()
}
