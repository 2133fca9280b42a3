// Package facet implements the kernel.Kernel interface with the pure
// face-list generators from pkg/solid. Solids are meshes from the
// moment they are created, so ToMesh is a copy, not a tessellation.
package facet

import (
	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/shape"
	"github.com/chazu/facet/pkg/solid"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// facetSolid wraps a mesh to implement kernel.Solid.
type facetSolid struct {
	obj *geom.Object
}

// BoundingBox returns the axis-aligned bounding box of the mesh
// vertices. An empty solid has a zero box.
func (s *facetSolid) BoundingBox() (min, max geom.Vec) {
	if s.obj.IsEmpty() {
		return geom.Vec{}, geom.Vec{}
	}

	min = s.obj.Faces[0].Vertex[0]
	max = min
	for _, f := range s.obj.Faces {
		for _, v := range f.Vertex {
			min = vecMin(min, v)
			max = vecMax(max, v)
		}
	}
	return min, max
}

func vecMin(a, b geom.Vec) geom.Vec {
	return geom.V(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
}

func vecMax(a, b geom.Vec) geom.Vec {
	return geom.V(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))
}

// Kernel implements kernel.Kernel using the face-list generators.
type Kernel struct{}

// New returns a new face-list Kernel.
func New() *Kernel {
	return &Kernel{}
}

func wrap(obj *geom.Object) kernel.Solid {
	return &facetSolid{obj: obj}
}

func unwrap(s kernel.Solid) *geom.Object {
	return s.(*facetSolid).obj
}

// Box creates a box with its minimum corner at the origin, which is how
// RectangularPrism already builds it.
func (k *Kernel) Box(x, y, z float32) kernel.Solid {
	return wrap(solid.RectangularPrism(x, y, z))
}

// Cylinder creates a cylinder with the given height, radius and segment
// count, built from an extruded circle. It inherits the extrusion
// limitation: top and bottom caps only, no side wall.
func (k *Kernel) Cylinder(height, radius float32, segments int) kernel.Solid {
	obj := shape.CircleN(radius, segments)
	solid.Extrude(obj, height)
	return wrap(obj)
}

// Sphere creates a subdivision sphere of the given radius. Unlike the
// raw solid.Sphere generator, the kernel applies the radius so both
// backends agree on output size.
func (k *Kernel) Sphere(radius float32) kernel.Solid {
	obj := solid.Sphere(1.0)
	obj.Scale(radius)
	return wrap(obj)
}

// Translate moves a solid by the given vector.
func (k *Kernel) Translate(s kernel.Solid, by geom.Vec) kernel.Solid {
	return wrap(unwrap(s).Translated(by))
}

// Scale scales a solid uniformly about the origin.
func (k *Kernel) Scale(s kernel.Solid, factor float32) kernel.Solid {
	return wrap(unwrap(s).Scaled(factor))
}

// ToMesh returns a copy of the solid's mesh.
func (k *Kernel) ToMesh(s kernel.Solid) (*geom.Object, error) {
	return unwrap(s).Clone(), nil
}
