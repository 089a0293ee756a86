// Package core provides fundamental types and utilities for the trading simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or displacement in arena units.
// Arena space is centered on the origin with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k on both axes.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned bounding box described by its center and half-extent.
type Box struct {
	Center Vec2
	Half   Vec2
}

// BoxAt builds the box for an object of the given size centered at pos.
// The half-extent is size*scale/2 on each axis.
func BoxAt(pos, size Vec2, scale float64) Box {
	return Box{
		Center: pos,
		Half:   Vec2{X: size.X * scale / 2, Y: size.Y * scale / 2},
	}
}

// Overlaps returns true if the two boxes intersect on both axes.
// Touching edges do not count as an overlap. The strict test is
// intentional: entities that only share an edge are apart and never
// collide.
func (b Box) Overlaps(o Box) bool {
	if AbsF(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if AbsF(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	return true
}

// Rect represents a cell-aligned rectangle on a Screen.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
