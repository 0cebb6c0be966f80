package game

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with a non-negative origin and size.
// It is an immutable value; construct it through NewRect.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect validates and builds a rectangle. Negative or non-finite
// components are rejected rather than clamped so a broken caller
// surfaces immediately.
func NewRect(x, y, w, h float64) (Rect, error) {
	for _, v := range [4]float64{x, y, w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rect{}, fmt.Errorf("rect: non-finite component in (%v, %v, %v, %v)", x, y, w, h)
		}
	}
	if x < 0 || y < 0 || w < 0 || h < 0 {
		return Rect{}, fmt.Errorf("rect: negative component in (%v, %v, %v, %v)", x, y, w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// Contains reports whether the point lies within the rectangle.
// All four edges are inclusive: a click exactly on a corner counts.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}
