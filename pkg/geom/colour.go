package geom

// Colour is an RGBA colour with 8-bit channels. Faces carry one but no
// consumer reads it yet; the zero value means "unset".
type Colour struct {
	R, G, B, Alpha uint8
}
