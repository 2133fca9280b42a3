// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. Solids are signed
// distance fields and only become triangle meshes when ToMesh runs
// marching cubes over them.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max geom.Vec) {
	bb := s.s.BoundingBox()
	min = fromV3(bb.Min)
	max = fromV3(bb.Max)
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct {
	// MeshCells overrides the marching cubes resolution when positive.
	MeshCells int
}

// New returns a new sdfx Kernel with the default tessellation
// resolution.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

func toV3(v geom.Vec) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func fromV3(v v3.Vec) geom.Vec {
	return geom.V(float32(v.X), float32(v.Y), float32(v.Z))
}

// Box creates a box with the given dimensions. The resulting solid has
// its minimum corner at the origin, matching the face-list backend.
// sdf.Box3D centers the box at the origin, so we translate by
// half-dimensions.
func (k *Kernel) Box(x, y, z float32) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: float64(x) / 2, Y: float64(y) / 2, Z: float64(z) / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Cylinder creates a cylinder with the given height and radius,
// centered on the origin. The segments parameter is ignored since SDF
// represents smooth surfaces.
func (k *Kernel) Cylinder(height, radius float32, segments int) kernel.Solid {
	s, err := sdf.Cylinder3D(float64(height), float64(radius), 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	return wrap(s)
}

// Sphere creates a sphere of the given radius centered on the origin.
func (k *Kernel) Sphere(radius float32) kernel.Solid {
	s, err := sdf.Sphere3D(float64(radius))
	if err != nil {
		panic(fmt.Sprintf("sdfx.Sphere3D: %v", err))
	}
	return wrap(s)
}

// Translate moves a solid by the given vector.
func (k *Kernel) Translate(s kernel.Solid, by geom.Vec) kernel.Solid {
	m := sdf.Translate3d(toV3(by))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Scale scales a solid uniformly about the origin.
func (k *Kernel) Scale(s kernel.Solid, factor float32) kernel.Solid {
	return wrap(sdf.ScaleUniform3D(unwrap(s), float64(factor)))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// Normals are derived from the triangle geometry rather than left as
// the face-list placeholder, since marching cubes carries no winding
// convention of its own.
func (k *Kernel) ToMesh(s kernel.Solid) (*geom.Object, error) {
	cells := k.MeshCells
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(unwrap(s), renderer)

	obj := geom.New()
	for _, tri := range triangles {
		f := geom.NewFace(fromV3(tri[0]), fromV3(tri[1]), fromV3(tri[2]))
		f.Normal = fromV3(tri.Normal())
		obj.Append(f)
	}

	return obj, nil
}
