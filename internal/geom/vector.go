// Package geom provides the float64 geometry the simulation runs on:
// 2D vectors, axis-aligned rectangles, and the collision predicates
// built on top of them.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec is a 2D vector. It aliases mgl64.Vec2, so the mathgl method set
// (Add, Sub, Mul, Dot, Len, ...) is available directly on values.
type Vec = mgl64.Vec2

// V constructs a Vec from its components.
func V(x, y float64) Vec { return Vec{x, y} }

// Normalize returns v scaled to unit length. A zero vector normalizes to
// the zero vector instead of dividing by zero.
func Normalize(v Vec) Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Mul(1 / l)
}

// Reflect mirrors incident about the surface described by normal. The
// normal is re-normalized first, so callers may pass any nonzero direction.
func Reflect(incident, normal Vec) Vec {
	n := Normalize(normal)
	return incident.Sub(n.Mul(2 * incident.Dot(n)))
}

// ClampLen caps v at maxLength while preserving its direction. Vectors at
// or under the cap, and the zero vector, pass through unchanged.
func ClampLen(v Vec, maxLength float64) Vec {
	l := v.Len()
	if l <= maxLength || l == 0 {
		return v
	}
	return v.Mul(maxLength / l)
}
