package geom

import "testing"

func ring(n int) []Vec {
	// Unit-ish ring in the z=0 plane; exact shape is irrelevant to the
	// fan structure.
	pts := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, V(float32(i), float32(i%2), 0))
	}
	return pts
}

func TestUmbrellaFaceCount(t *testing.T) {
	tests := []struct {
		name   string
		spokes int
	}{
		{"two spokes", 2},
		{"five spokes", 5},
		{"many spokes", 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := Umbrella(V(0, 0, 1), ring(tt.spokes))
			if got := obj.FaceCount(); got != tt.spokes {
				t.Errorf("FaceCount() = %d, want %d", got, tt.spokes)
			}
		})
	}
}

func TestUmbrellaStructure(t *testing.T) {
	centre := V(0, 0, 1)
	spokes := []Vec{V(1, 0, 0), V(0, 1, 0), V(-1, 0, 0)}
	obj := Umbrella(centre, spokes)

	// Sequential faces are (centre, spoke[i+1], spoke[i]).
	for i := 0; i < len(spokes)-1; i++ {
		f := obj.Faces[i]
		if f.Vertex[0] != centre || f.Vertex[1] != spokes[i+1] || f.Vertex[2] != spokes[i] {
			t.Errorf("face %d = %v, want (centre, spoke[%d], spoke[%d])", i, f, i+1, i)
		}
	}
	// The closing face joins the last spoke back to the first.
	last := obj.Faces[len(spokes)-1]
	if last.Vertex[0] != centre || last.Vertex[1] != spokes[0] || last.Vertex[2] != spokes[2] {
		t.Errorf("closing face = %v, want (centre, first, last)", last)
	}
}

func TestUmbrellaTooFewSpokesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Umbrella with one spoke did not panic")
		}
	}()
	Umbrella(Origin, ring(1))
}

func TestPolygonFaceCount(t *testing.T) {
	tests := []struct {
		name  string
		verts int
		want  int
	}{
		{"triangle", 3, 1},
		{"quad", 4, 2},
		{"hexagon", 6, 4},
		{"circle-sized", 32, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := Polygon(ring(tt.verts))
			if got := obj.FaceCount(); got != tt.want {
				t.Errorf("FaceCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPolygonAnchoredAtFirstVertex(t *testing.T) {
	verts := []Vec{V(0, 0, 0), V(1, 0, 0), V(1, 1, 0), V(0, 1, 0)}
	obj := Polygon(verts)

	for i, f := range obj.Faces {
		if f.Vertex[0] != verts[0] {
			t.Errorf("face %d not anchored at v0: %v", i, f)
		}
		if f.Vertex[1] != verts[i+1] || f.Vertex[2] != verts[i+2] {
			t.Errorf("face %d = %v, want (v0, v%d, v%d)", i, f, i+1, i+2)
		}
	}
}

func TestPolygonTooFewVerticesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Polygon with two vertices did not panic")
		}
	}()
	Polygon(ring(2))
}
