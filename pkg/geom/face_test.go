package geom

import "testing"

func TestNewFacePlaceholderNormal(t *testing.T) {
	f := NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))

	if got, want := f.Normal, V(0, 0, 1); got != want {
		t.Errorf("Normal = %v, want placeholder %v", got, want)
	}
	if got, want := f.Colour, (Colour{}); got != want {
		t.Errorf("Colour = %v, want unset %v", got, want)
	}
}

func TestFaceInvertSwapsWinding(t *testing.T) {
	f := NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	f.Invert()

	want := [3]Vec{V(0, 0, 0), V(0, 1, 0), V(1, 0, 0)}
	if f.Vertex != want {
		t.Errorf("Vertex after Invert = %v, want %v", f.Vertex, want)
	}

	f.Invert()
	want = [3]Vec{V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)}
	if f.Vertex != want {
		t.Errorf("double Invert = %v, want original %v", f.Vertex, want)
	}
}

func TestFaceTranslate(t *testing.T) {
	f := NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	f.Translate(V(1, 2, 3))

	want := [3]Vec{V(1, 2, 3), V(2, 2, 3), V(1, 3, 3)}
	if f.Vertex != want {
		t.Errorf("Vertex after Translate = %v, want %v", f.Vertex, want)
	}
	if got := f.Normal; got != V(0, 0, 1) {
		t.Errorf("Translate touched the normal: %v", got)
	}
}

func TestFaceTranslatedCopies(t *testing.T) {
	f := NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	g := f.Translated(V(0, 0, 5))

	if f.Vertex[0] != V(0, 0, 0) {
		t.Error("Translated mutated the receiver")
	}
	if g.Vertex[0] != V(0, 0, 5) {
		t.Errorf("Translated copy vertex = %v, want (0 0 5)", g.Vertex[0])
	}
}

func TestFaceScale(t *testing.T) {
	f := NewFace(V(1, 0, 0), V(0, 2, 0), V(0, 0, 3))
	f.Scale(2)

	want := [3]Vec{V(2, 0, 0), V(0, 4, 0), V(0, 0, 6)}
	if f.Vertex != want {
		t.Errorf("Vertex after Scale = %v, want %v", f.Vertex, want)
	}
}

func TestFaceDerivedNormal(t *testing.T) {
	tests := []struct {
		name string
		f    Face
		want Vec
	}{
		{"ccw in xy plane", NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0)), V(0, 0, 1)},
		{"cw in xy plane", NewFace(V(0, 0, 0), V(0, 1, 0), V(1, 0, 0)), V(0, 0, -1)},
		{"xz plane", NewFace(V(0, 0, 0), V(0, 0, 1), V(1, 0, 0)), V(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.DerivedNormal(); !vecsClose(got, tt.want) {
				t.Errorf("DerivedNormal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerivedNormalFlipsWithInvert(t *testing.T) {
	f := NewFace(V(0, 0, 0), V(1, 0, 0), V(0, 1, 0))
	before := f.DerivedNormal()
	f.Invert()
	after := f.DerivedNormal()

	if !vecsClose(after, before.Neg()) {
		t.Errorf("normal after Invert = %v, want %v", after, before.Neg())
	}
}
