// Package kernel defines the abstract geometry kernel interface.
// Implementations (facet, sdfx) provide solid primitives and
// tessellation behind this interface. The kernel abstraction allows
// swapping the pure face-list generators for an SDF backend without
// changing the rest of the system.
package kernel

import "github.com/chazu/facet/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max geom.Vec)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float32) Solid
	Cylinder(height, radius float32, segments int) Solid
	Sphere(radius float32) Solid

	// Transforms
	Translate(s Solid, by geom.Vec) Solid
	Scale(s Solid, factor float32) Solid

	// Mesh output
	ToMesh(s Solid) (*geom.Object, error)
}
