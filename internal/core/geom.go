// Package core provides fundamental types and utilities shared by the chase
// simulation and the terminal front end. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec is a 2D point or vector in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle returns atan2(y, x).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}

// RectF is an axis-aligned rectangle in world units.
// X, Y is the minimum corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a rectangle from its minimum corner and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// CenteredRect creates a rectangle of the given size centered on c.
func CenteredRect(c Vec, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r RectF) MinX() float64 { return r.X }
func (r RectF) MinY() float64 { return r.Y }
func (r RectF) MaxX() float64 { return r.X + r.W }
func (r RectF) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by dx on the left and right and by dy on the
// top and bottom. Insetting past the center yields an empty rectangle at the
// center.
func (r RectF) Inset(dx, dy float64) RectF {
	out := RectF{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// IsEmpty reports whether the rectangle has no area.
func (r RectF) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect, and empty
// rectangles never intersect anything.
func (r RectF) Intersects(other RectF) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	if r.X >= other.MaxX() || other.X >= r.MaxX() {
		return false
	}
	if r.Y >= other.MaxY() || other.Y >= r.MaxY() {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside the closed rectangle.
func (r RectF) ContainsPoint(p Vec) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
