// Package solid builds closed (or documented-as-open) 3-D meshes from
// the geom primitives: axis-aligned prisms, extruded shapes, the regular
// icosahedron and subdivision spheres.
package solid

import (
	"math"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/shape"
)

// sphereRounds is the fixed number of subdivision passes used by Sphere.
// Termination is structural: each pass quadruples the face count, so
// 20 icosahedron faces become 20*4^4 = 5120.
const sphereRounds = 4

// RectangularPrism returns a closed axis-aligned box with one corner at
// the origin, as 12 triangles. Each of the three panels through the
// origin is paired with a translated, inverted copy on the opposite
// side, which is what makes every panel wind outward.
func RectangularPrism(width, depth, height float32) *geom.Object {
	obj := geom.New()

	vx := geom.V(width, 0, 0)
	vy := geom.V(0, depth, 0)
	vz := geom.V(0, 0, height)

	bottom := shape.Squarish(vy, vx)
	obj.Merge(bottom)
	obj.Merge(bottom.Translated(vz).Inverted())

	side := shape.Squarish(vz, vy)
	obj.Merge(side)
	obj.Merge(side.Translated(vx).Inverted())

	front := shape.Squarish(vx, vz)
	obj.Merge(front)
	obj.Merge(front.Translated(vy).Inverted())

	return obj
}

// Cube returns a closed cube of the given edge length with one corner
// at the origin.
func Cube(size float32) *geom.Object {
	return RectangularPrism(size, size, size)
}

// Cylinder returns a circle of the given radius extruded to the given
// height. It inherits Extrude's limitation: caps only, no side wall.
func Cylinder(height, radius float32) *geom.Object {
	obj := shape.Circle(radius)
	Extrude(obj, height)
	return obj
}

// Extrude turns a z=0 shape into the two caps of a solid of the given
// height, in place. The existing faces are inverted to become the
// downward-facing bottom cap; a copy with the original winding is
// raised by height to form the top cap. The face count doubles.
//
// No side wall is generated: the result is an open pair of caps, not a
// manifold solid. Boundary-edge side quads are a known gap.
func Extrude(obj *geom.Object, height float32) {
	offset := geom.V(0, 0, height)

	for i := range obj.Faces {
		obj.Faces[i].Invert()
	}

	caps := len(obj.Faces)
	for _, f := range obj.Faces[:caps] {
		f.Invert()
		f.Translate(offset)
		obj.Append(f)
	}
}

// Icosahedron returns the regular icosahedron of the given
// circumradius: 20 faces, all 12 vertices at distance radius from the
// origin.
//
// With the two poles on the z axis the other ten vertices sit at
// latitude ±atan(1/2), at evenly spaced longitudes 36° apart,
// alternating between the north and south rings.
func Icosahedron(radius float32) *geom.Object {
	obj := geom.New()

	lat := math.Atan(0.5)
	z := float32(math.Sin(lat))
	c := float32(math.Cos(lat))
	theta := 2 * math.Pi / 5

	top := make([]geom.Vec, 0, 5)
	for i := 0; i < 5; i++ {
		lon := theta * float64(i)
		top = append(top, geom.V(
			c*float32(math.Cos(lon)),
			c*float32(math.Sin(lon)),
			z,
		))
	}
	obj.Merge(geom.Umbrella(geom.V(0, 0, 1), top).Inverted())

	bottom := make([]geom.Vec, 0, 5)
	for i := 0; i < 5; i++ {
		lon := theta * (0.5 + float64(i))
		bottom = append(bottom, geom.V(
			c*float32(math.Cos(lon)),
			c*float32(math.Sin(lon)),
			-z,
		))
	}
	obj.Merge(geom.Umbrella(geom.V(0, 0, -1), bottom))

	// Zig-zag band joining the two rings, then the wrap-around pair
	// closing ring index 4 back to 0.
	for i := 0; i+1 < 5; i++ {
		obj.Append(geom.NewFace(bottom[i], top[i+1], top[i]))
		obj.Append(geom.NewFace(bottom[i], bottom[i+1], top[i+1]))
	}
	obj.Append(geom.NewFace(top[0], top[4], bottom[4]))
	obj.Append(geom.NewFace(bottom[4], bottom[0], top[0]))

	obj.Scale(radius)
	return obj
}

// Spherify subdivides every face into four: three corner triangles and
// one central triangle through the edge midpoints, with each midpoint
// projected onto the unit sphere. Children appear in their parent's
// order, so one pass over F faces yields exactly 4F faces.
func Spherify(obj *geom.Object) *geom.Object {
	sphere := geom.New()

	for _, f := range obj.Faces {
		tri := f.Vertex

		for i := 0; i < 3; i++ {
			v0, v1, v2 := tri[i], tri[(i+1)%3], tri[(i+2)%3]
			sphere.Append(geom.NewFace(
				v0,
				midpointOnSphere(v0, v1),
				midpointOnSphere(v0, v2),
			))
		}

		sphere.Append(geom.NewFace(
			midpointOnSphere(tri[0], tri[1]),
			midpointOnSphere(tri[1], tri[2]),
			midpointOnSphere(tri[0], tri[2]),
		))
	}

	return sphere
}

// midpointOnSphere projects the midpoint of a and b onto the unit sphere.
func midpointOnSphere(a, b geom.Vec) geom.Vec {
	return a.Add(b).DivScalar(2).Normalize()
}

// Sphere approximates a sphere by subdividing a unit icosahedron a
// fixed number of times.
//
// The radius parameter is currently not applied: the result always has
// unit radius. Rescaling the subdivided mesh is a pending change.
func Sphere(radius float32) *geom.Object {
	obj := Icosahedron(1.0)
	for i := 0; i < sphereRounds; i++ {
		obj = Spherify(obj)
	}
	return obj
}
