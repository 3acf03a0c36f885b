package core

import "math"

// ONB is an orthonormal basis with W as its principal axis
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds an orthonormal basis around the given direction.
// The direction does not need to be normalized.
func NewONBFromW(w Vec3) ONB {
	w = w.Normalize()

	// Pick a helper axis that is not parallel to w
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in basis coordinates to world space
func (b ONB) Local(a Vec3) Vec3 {
	return b.U.Multiply(a.X).Add(b.V.Multiply(a.Y)).Add(b.W.Multiply(a.Z))
}
