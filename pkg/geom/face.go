package geom

import "fmt"

// Face is a single triangle: three vertices, a normal and a colour.
// Vertex order defines the winding; by the right-hand rule the winding
// determines which side of the triangle faces outward.
type Face struct {
	Normal Vec
	Vertex [3]Vec
	Colour Colour
}

// NewFace builds a Face from three vertices. The normal is set to the
// placeholder (0,0,1) rather than derived from the vertices; generators
// rely on winding alone and serialized normals stay constant. Call
// (*Object).RecomputeNormals to derive real normals afterwards.
func NewFace(p1, p2, p3 Vec) Face {
	return Face{
		Normal: Vec{Z: 1},
		Vertex: [3]Vec{p1, p2, p3},
	}
}

// Invert swaps vertices 1 and 2, reversing the winding so the face
// points the other way.
func (f *Face) Invert() {
	f.Vertex[1], f.Vertex[2] = f.Vertex[2], f.Vertex[1]
}

// Translate moves every vertex by v. The normal is unchanged.
func (f *Face) Translate(v Vec) {
	for i := range f.Vertex {
		f.Vertex[i] = f.Vertex[i].Add(v)
	}
}

// Translated returns a copy of f moved by v.
func (f Face) Translated(v Vec) Face {
	f.Translate(v)
	return f
}

// Scale multiplies every vertex by s about the origin. The normal is
// unchanged.
func (f *Face) Scale(s float32) {
	for i := range f.Vertex {
		f.Vertex[i] = f.Vertex[i].MulScalar(s)
	}
}

// DerivedNormal computes the unit normal implied by the winding,
// normalize(cross(v2-v1, v3-v1)). Degenerate (collinear) triangles have
// no normal and panic via Normalize.
func (f Face) DerivedNormal() Vec {
	a := f.Vertex[1].Sub(f.Vertex[0])
	b := f.Vertex[2].Sub(f.Vertex[0])
	return a.Cross(b).Normalize()
}

// String formats the triangle as its three vertices.
func (f Face) String() string {
	return fmt.Sprintf("%v -- %v -- %v", f.Vertex[0], f.Vertex[1], f.Vertex[2])
}
