package core

import "math"

// ONB is an orthonormal basis built around a surface normal, used to map
// locally-sampled directions (e.g. a cosine-weighted hemisphere sample) into
// world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the given (unit) normal.
func NewONB(normal Vec3) ONB {
	w := normal.Normalize()

	// Pick a helper axis that isn't nearly parallel to w.
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Transform maps a local-frame vector into world space.
func (b ONB) Transform(v Vec3) Vec3 {
	return b.U.Multiply(v.X).Add(b.V.Multiply(v.Y)).Add(b.W.Multiply(v.Z))
}
