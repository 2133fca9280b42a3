// Package geom defines the core geometry value types: vectors, colours,
// triangular faces and the Object mesh built from them. Everything is a
// plain value; operations copy rather than alias, so callers never share
// mutable state through a mesh.
package geom

import (
	"fmt"
	"math"
)

// Vec is a 3-D vector. It doubles as a point: positions and displacements
// share the representation, matching STL's float32 coordinates.
type Vec struct {
	X, Y, Z float32
}

// Origin is the zero point.
var Origin = Vec{}

// V is shorthand for constructing a Vec.
func V(x, y, z float32) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// MulScalar returns v scaled by s.
func (v Vec) MulScalar(s float32) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar returns v divided by s. Dividing by zero is a programmer
// error and panics.
func (v Vec) DivScalar(s float32) Vec {
	if s == 0 {
		panic("geom: Vec division by zero")
	}
	return Vec{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns v scaled to unit length. A zero-length vector has no
// direction and panics.
func (v Vec) Normalize() Vec {
	return v.DivScalar(v.Length())
}

// String formats the coordinates in scientific notation, the layout the
// ASCII STL writer emits.
func (v Vec) String() string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}
