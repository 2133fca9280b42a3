// Package shape builds 2-D outlines on the z=0 plane. A shape is an
// ordinary geom.Object whose vertices all have z=0; solids are built
// from shapes by extrusion.
package shape

import (
	"math"

	"github.com/chazu/facet/pkg/geom"
)

// Fragments is the default number of segments used to approximate a
// full circle.
const Fragments = 32

// Circle returns a filled circle of the given radius, approximated by
// Fragments equally spaced points and fan-triangulated.
func Circle(radius float32) *geom.Object {
	return CircleN(radius, Fragments)
}

// CircleN is Circle with an explicit segment count.
func CircleN(radius float32, segments int) *geom.Object {
	step := 2 * math.Pi / float64(segments)

	points := make([]geom.Vec, 0, segments)
	for i := 0; i < segments; i++ {
		theta := float64(i) * step
		points = append(points, geom.V(
			radius*float32(math.Cos(theta)),
			radius*float32(math.Sin(theta)),
			0,
		))
	}
	return geom.Polygon(points)
}

// Squarish returns the parallelogram spanned by v1 and v2 from the
// origin: the quad {origin, v1, v1+v2, v2}, fan-triangulated into two
// faces.
func Squarish(v1, v2 geom.Vec) *geom.Object {
	return geom.Polygon([]geom.Vec{geom.Origin, v1, v1.Add(v2), v2})
}

// Rectangle returns a width × height rectangle with one corner at the
// origin, in the z=0 plane.
func Rectangle(width, height float32) *geom.Object {
	return Squarish(geom.V(width, 0, 0), geom.V(0, height, 0))
}

// Square returns an l × l square with one corner at the origin.
func Square(l float32) *geom.Object {
	return Rectangle(l, l)
}

// Polygon triangulates an ordered ring of z=0 vertices. It shares
// geom.Polygon's constraint: convex or star-shaped from the first
// vertex only.
func Polygon(vertices []geom.Vec) *geom.Object {
	return geom.Polygon(vertices)
}

// Text renders a text outline. Not implemented.
func Text(text string) (*geom.Object, error) {
	return nil, geom.ErrNotImplemented
}
