// Package core provides platform-neutral building blocks shared by the
// simulation and the terminal frontend. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap (touching edges do not).
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps world coordinates onto a cell grid.
// A world of WorldW x WorldH units is stretched over CellsW x CellsH cells.
type Scale struct {
	WorldW, WorldH float64
	CellsW, CellsH int
}

// X converts a world x-coordinate to a column.
func (s Scale) X(wx float64) int {
	if s.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(wx * float64(s.CellsW) / s.WorldW))
}

// Y converts a world y-coordinate to a row.
func (s Scale) Y(wy float64) int {
	if s.WorldH <= 0 {
		return 0
	}
	return int(math.Floor(wy * float64(s.CellsH) / s.WorldH))
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
