package chase

import (
	"github.com/vovakirdan/conga/internal/core"
)

// PlayableArea returns the band of the screen where play happens: full width,
// with height limited by maxAspectRatio and centered vertically.
func PlayableArea(screenW, screenH, maxAspectRatio float64) core.RectF {
	playableHeight := screenW / maxAspectRatio
	margin := (screenH - playableHeight) / 2
	return core.NewRectF(0, margin, screenW, playableHeight)
}

// Bounds is the rectangle the character's center must stay within.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CharacterBounds spans the whole screen width and the playable area's height.
func CharacterBounds(area core.RectF, screenW float64) Bounds {
	return Bounds{
		MinX: 0,
		MaxX: screenW,
		MinY: area.MinY(),
		MaxY: area.MaxY(),
	}
}

// Clamp pulls c back inside b. Any contact with an edge halts the character
// completely. It reports whether a clamp happened.
func (b Bounds) Clamp(c *Character) bool {
	clamped := false

	if c.Pos.X < b.MinX {
		c.Pos.X = b.MinX
		clamped = true
	} else if c.Pos.X > b.MaxX {
		c.Pos.X = b.MaxX
		clamped = true
	}

	if c.Pos.Y < b.MinY {
		c.Pos.Y = b.MinY
		clamped = true
	} else if c.Pos.Y > b.MaxY {
		c.Pos.Y = b.MaxY
		clamped = true
	}

	if clamped {
		c.Vel = core.Vec{}
	}
	return clamped
}
