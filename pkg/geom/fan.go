package geom

import "fmt"

// Umbrella triangulates a disk around centre: one face per consecutive
// pair of spokes, plus a closing face joining the last spoke back to the
// first. With k spokes it emits exactly k faces. At least two spokes are
// required; fewer is a programmer error and panics.
func Umbrella(centre Vec, spokes []Vec) *Object {
	if len(spokes) < 2 {
		panic(fmt.Sprintf("geom: Umbrella needs at least 2 spokes, got %d", len(spokes)))
	}

	obj := New()
	for i := 0; i+1 < len(spokes); i++ {
		obj.Append(NewFace(centre, spokes[i+1], spokes[i]))
	}
	obj.Append(NewFace(centre, spokes[0], spokes[len(spokes)-1]))
	return obj
}

// Polygon triangulates an ordered ring of coplanar vertices as a simple
// fan anchored at the first vertex, emitting len(vertices)-2 faces.
//
// The fan is only valid when the polygon is convex, or at least
// star-shaped as seen from vertices[0]; no ear clipping is performed.
// Callers own that constraint. At least three vertices are required;
// fewer is a programmer error and panics.
func Polygon(vertices []Vec) *Object {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("geom: Polygon needs at least 3 vertices, got %d", len(vertices)))
	}

	obj := New()
	anchor := vertices[0]
	for i := 1; i+1 < len(vertices); i++ {
		obj.Append(NewFace(anchor, vertices[i], vertices[i+1]))
	}
	return obj
}
