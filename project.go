package sim

import "math"

// Project perspective-divides a transformed 4D point into a 3D position and a
// depth hint for point-size scaling.
//
// The divisor is wFactor = 1 + p.W*projectionFactor. As p.W approaches
// -1/projectionFactor the point races toward infinity and flips through it;
// that singularity is part of the intended visual effect and is deliberately
// not clamped. The only guard is against non-finite output: when the divided
// position is NaN or Inf, ok is false and the caller should drop the particle
// for this frame rather than hand the renderer a poisoned value.
//
// A projectionFactor of zero returns p's spatial part unchanged regardless
// of p.W.
func Project(p Vec4, projectionFactor float64) (pos Vec3, depth float64, ok bool) {
	wFactor := 1 + p.W*projectionFactor
	pos = Vec3{p.X / wFactor, p.Y / wFactor, p.Z / wFactor}
	if !finite3(pos) {
		return Vec3{}, wFactor, false
	}
	return pos, wFactor, true
}

// finite3 reports whether all three components are finite.
func finite3(v Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
