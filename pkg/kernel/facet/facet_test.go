package facet

import (
	"math"
	"testing"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/shape"
)

const tolerance = 1e-5

func TestBoxMesh(t *testing.T) {
	k := New()
	s := k.Box(2, 3, 4)

	obj, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if got := obj.FaceCount(); got != 12 {
		t.Errorf("FaceCount() = %d, want 12", got)
	}

	min, max := s.BoundingBox()
	if min != geom.V(0, 0, 0) || max != geom.V(2, 3, 4) {
		t.Errorf("BoundingBox() = %v..%v, want (0 0 0)..(2 3 4)", min, max)
	}
}

func TestCylinderMesh(t *testing.T) {
	k := New()
	s := k.Cylinder(10, 2, 8)

	obj, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	// Caps only: an 8-segment circle fans into 6 faces, doubled.
	if got := obj.FaceCount(); got != 12 {
		t.Errorf("FaceCount() = %d, want 12", got)
	}
}

func TestSphereAppliesRadius(t *testing.T) {
	k := New()
	s := k.Sphere(3)

	obj, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	if got := obj.FaceCount(); got != 5120 {
		t.Errorf("FaceCount() = %d, want 5120", got)
	}
	for i, f := range obj.Faces {
		for _, v := range f.Vertex {
			if d := math.Abs(float64(v.Length()) - 3); d > 3*tolerance {
				t.Fatalf("face %d: vertex %v at distance %v, want 3", i, v, v.Length())
			}
		}
	}
}

func TestTranslateAndScale(t *testing.T) {
	k := New()
	s := k.Box(1, 1, 1)

	s = k.Translate(s, geom.V(10, 0, 0))
	min, max := s.BoundingBox()
	if min != geom.V(10, 0, 0) || max != geom.V(11, 1, 1) {
		t.Errorf("after Translate: box = %v..%v", min, max)
	}

	s = k.Scale(s, 2)
	min, max = s.BoundingBox()
	if min != geom.V(20, 0, 0) || max != geom.V(22, 2, 2) {
		t.Errorf("after Scale: box = %v..%v", min, max)
	}
}

func TestToMeshCopies(t *testing.T) {
	k := New()
	s := k.Box(1, 1, 1)

	a, _ := k.ToMesh(s)
	b, _ := k.ToMesh(s)
	a.Translate(geom.V(5, 0, 0))

	if b.Faces[0].Vertex[0] == a.Faces[0].Vertex[0] {
		t.Error("ToMesh results alias the same faces")
	}
}

func TestCylinderSegmentsHonored(t *testing.T) {
	k := New()
	for _, segments := range []int{3, 8, shape.Fragments} {
		obj, err := k.ToMesh(k.Cylinder(1, 1, segments))
		if err != nil {
			t.Fatalf("ToMesh: %v", err)
		}
		if got, want := obj.FaceCount(), 2*(segments-2); got != want {
			t.Errorf("segments=%d: FaceCount() = %d, want %d", segments, got, want)
		}
	}
}
