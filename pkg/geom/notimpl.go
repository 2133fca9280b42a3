package geom

import "errors"

// ErrNotImplemented is returned by declared operations that have no
// behavior yet. Callers must be able to tell a stub from a successful
// no-op, so these never fail silently.
var ErrNotImplemented = errors.New("geom: not implemented")

// The transforms below are part of the planned modeling surface but have
// no behavior yet. Each reports ErrNotImplemented.

// Rotate rotates the mesh by Euler angles. Not implemented.
func (o *Object) Rotate(by Vec) error {
	return ErrNotImplemented
}

// Resize scales the mesh to the given bounding size. Not implemented.
func (o *Object) Resize(size Vec) error {
	return ErrNotImplemented
}

// Mirror reflects the mesh through a plane. Not implemented.
func (o *Object) Mirror(around Vec) error {
	return ErrNotImplemented
}

// Color sets the colour of every face from float channels. Not implemented.
func (o *Object) Color(r, g, b, a float32) error {
	return ErrNotImplemented
}

// ColorByName sets the colour of every face from a named colour. Not
// implemented.
func (o *Object) ColorByName(name string, alpha float32) error {
	return ErrNotImplemented
}

// Offset grows or shrinks the mesh by a radius. Not implemented.
func (o *Object) Offset(r float32) error {
	return ErrNotImplemented
}

// Hull replaces the mesh with the convex hull of itself and other. Not
// implemented.
func (o *Object) Hull(other *Object) error {
	return ErrNotImplemented
}

// Minkowski replaces the mesh with its Minkowski sum with other. Not
// implemented.
func (o *Object) Minkowski(other *Object) error {
	return ErrNotImplemented
}
