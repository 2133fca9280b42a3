package geom

import "strings"

// Object is a triangle mesh: an ordered, flat list of independent Faces.
// There is no shared vertex buffer and no adjacency structure; every
// composition operator copies whole Face values. Insertion order is
// stable but carries no meaning (STL does not preserve it either).
//
// A Shape is an Object whose vertices all sit on the z=0 plane. That is
// a usage convention, not something the type enforces.
type Object struct {
	Faces []Face
}

// New returns an empty mesh.
func New() *Object {
	return &Object{}
}

// Append adds a single face.
func (o *Object) Append(f Face) {
	o.Faces = append(o.Faces, f)
}

// Merge appends copies of all of other's faces, preserving their order.
func (o *Object) Merge(other *Object) {
	o.Faces = append(o.Faces, other.Faces...)
}

// FaceCount returns the number of faces.
func (o *Object) FaceCount() int {
	return len(o.Faces)
}

// IsEmpty reports whether the mesh has no geometry.
func (o *Object) IsEmpty() bool {
	return len(o.Faces) == 0
}

// Clone returns a deep copy of the mesh.
func (o *Object) Clone() *Object {
	faces := make([]Face, len(o.Faces))
	copy(faces, o.Faces)
	return &Object{Faces: faces}
}

// Inverted returns a copy with every face's winding reversed. Used to
// flip a generated batch of faces (a prism's top cap versus its bottom
// cap) without re-deriving the geometry.
func (o *Object) Inverted() *Object {
	inv := o.Clone()
	for i := range inv.Faces {
		inv.Faces[i].Invert()
	}
	return inv
}

// Translate moves every face by v in place.
func (o *Object) Translate(v Vec) {
	for i := range o.Faces {
		o.Faces[i].Translate(v)
	}
}

// Translated returns a copy of the mesh moved by v.
func (o *Object) Translated(v Vec) *Object {
	t := o.Clone()
	t.Translate(v)
	return t
}

// Scale multiplies every vertex by s about the origin, in place.
func (o *Object) Scale(s float32) {
	for i := range o.Faces {
		o.Faces[i].Scale(s)
	}
}

// Scaled returns a copy of the mesh scaled by s about the origin.
func (o *Object) Scaled(s float32) *Object {
	t := o.Clone()
	t.Scale(s)
	return t
}

// RecomputeNormals replaces every face's placeholder normal with the one
// implied by its winding. Faces built by NewFace carry the constant
// (0,0,1) until this is called.
func (o *Object) RecomputeNormals() {
	for i := range o.Faces {
		o.Faces[i].Normal = o.Faces[i].DerivedNormal()
	}
}

// String prints one face per line.
func (o *Object) String() string {
	var b strings.Builder
	for _, f := range o.Faces {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}
