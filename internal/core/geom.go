// Package core provides fundamental types and utilities for the shmup simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box with sub-pixel coordinates.
// All methods are value receivers and return new rects; entities replace
// their rect wholesale instead of mutating fields in place.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewRect creates a new rectangle. Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: math.Max(w, 0), H: math.Max(h, 0)}
}

// RectFromCenter creates a rectangle of the given size centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.CenterX(), Y: r.CenterY()}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Move returns the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// MoveTo returns the rectangle with its top-left corner at (x, y).
func (r Rect) MoveTo(x, y float64) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// Inflate grows the rectangle by dx and dy, keeping its center fixed.
// Negative values shrink it; size never drops below zero.
func (r Rect) Inflate(dx, dy float64) Rect {
	return NewRect(r.X-dx/2, r.Y-dy/2, r.W+dx, r.H+dy)
}

// ScaleBy multiplies width and height, keeping the top-left corner.
// This is not center-preserving: ScaleBy(0.5, 0.5) yields a box biased
// toward the top-left of the original.
func (r Rect) ScaleBy(fx, fy float64) Rect {
	return NewRect(r.X, r.Y, r.W*fx, r.H*fy)
}

// Clamp returns the rectangle moved so that it lies inside bounds.
// If it is larger than bounds on an axis it is aligned to the bounds' start.
func (r Rect) Clamp(bounds Rect) Rect {
	x, y := r.X, r.Y
	if r.W >= bounds.W {
		x = bounds.X
	} else if x < bounds.Left() {
		x = bounds.Left()
	} else if r.Right() > bounds.Right() {
		x = bounds.Right() - r.W
	}
	if r.H >= bounds.H {
		y = bounds.Y
	} else if y < bounds.Top() {
		y = bounds.Top()
	} else if r.Bottom() > bounds.Bottom() {
		y = bounds.Bottom() - r.H
	}
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// CollidesWith reports whether two rectangles overlap.
// Edges are half-open: touching rectangles do not collide, and a rectangle
// with zero width or height never collides.
func (r Rect) CollidesWith(other Rect) bool {
	if r.Right() <= other.Left() || r.Left() >= other.Right() {
		return false
	}
	if r.Bottom() <= other.Top() || r.Top() >= other.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Lerp moves each coordinate of r a fraction t of the way toward target.
func (r Rect) Lerp(target Rect, t float64) Rect {
	return Rect{
		X: r.X + (target.X-r.X)*t,
		Y: r.Y + (target.Y-r.Y)*t,
		W: r.W + (target.W-r.W)*t,
		H: r.H + (target.H-r.H)*t,
	}
}

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Len returns the euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns the vector multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Unit returns the vector divided by its length.
// A zero vector has no direction and yields ErrZeroVector.
func (v Vec) Unit() (Vec, error) {
	l := v.Len()
	if l == 0 {
		return Vec{}, ErrZeroVector
	}
	return Vec{X: v.X / l, Y: v.Y / l}, nil
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
