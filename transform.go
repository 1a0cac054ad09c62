package sim

// TransformPoint maps a base lattice coordinate through the blended affine
// transform and the two accumulated planar rotations.
//
// Order (fixed by convention):
//
//	Lerp(t1, t2, interp) · base -> RotateXY(angleXY) -> RotateZW(angleZW)
//
// The two planar rotations act on disjoint coordinate pairs and therefore
// commute with each other, but the matrix step does not commute with either,
// so blend-then-rotate must be preserved. interp outside [0, 1] extrapolates
// the matrix blend; that is intentional, callers clamp when they want the
// bounded behavior. Stateless: the accumulated angles are owned by the
// caller (see [RotationState]).
func TransformPoint(base Vec4, t1, t2 Mat4, interp, angleXY, angleZW float64) Vec4 {
	p := t1.Lerp(t2, interp).MulVec(base)
	p = RotateXY(p, angleXY)
	p = RotateZW(p, angleZW)
	return p
}

// RotationState holds the two monotonically accumulated rotation angles for
// the wave mode. Angles grow at the configured angular speeds while their
// enable flags are set and reset to zero only by an explicit Reset.
type RotationState struct {
	AngleXY float64
	AngleZW float64
}

// Advance accumulates dt seconds of rotation at the given angular speeds.
// A disabled plane holds its current angle rather than snapping back.
func (r *RotationState) Advance(dt float64, p *Params) {
	if p.RotateXYEnabled {
		r.AngleXY += p.RotateXYSpeed * dt
	}
	if p.RotateZWEnabled {
		r.AngleZW += p.RotateZWSpeed * dt
	}
}

// Reset zeroes both accumulated angles.
func (r *RotationState) Reset() {
	r.AngleXY = 0
	r.AngleZW = 0
}
