package sim

import (
	"math"
	"testing"
)

func TestTransformIdentityProperty(t *testing.T) {
	// Identity matrices, zero angles: the input comes back unchanged for
	// any interpolation fraction.
	v := Vec4{0.4, -1.2, 2.0, -0.3}
	for _, interp := range []float64{0, 0.25, 0.5, 1} {
		got := TransformPoint(v, Identity4(), Identity4(), interp, 0, 0)
		assertVec4(t, "identity transform", got, v)
	}
}

func TestTransformBlendsMatrices(t *testing.T) {
	// t1 doubles X, t2 quadruples X; halfway blend triples it.
	t1 := Identity4()
	t1.M[0][0] = 2
	t2 := Identity4()
	t2.M[0][0] = 4

	got := TransformPoint(Vec4{X: 1}, t1, t2, 0.5, 0, 0)
	assertVec4(t, "blended", got, Vec4{X: 3})
}

func TestTransformOrderMatrixBeforeRotation(t *testing.T) {
	// A non-uniform scale followed by a 90° XY rotation lands differently
	// than rotate-then-scale would; pin the blend-then-rotate order.
	scale := Identity4()
	scale.M[0][0] = 2 // X doubles, Y unchanged

	got := TransformPoint(Vec4{X: 1, Y: 0}, scale, scale, 0, math.Pi/2, 0)
	// Matrix first: (2, 0) -> rotate 90°: (0, 2).
	assertVec4(t, "matrix-then-rotate", got, Vec4{Y: 2})
}

func TestTransformComposedRotationsMatchSum(t *testing.T) {
	v := Vec4{0.7, -0.2, 1.1, 0.5}
	theta, phi := math.Pi/2, math.Pi/2
	id := Identity4()

	step := TransformPoint(TransformPoint(v, id, id, 0, theta, 0), id, id, 0, phi, 0)
	direct := TransformPoint(v, id, id, 0, theta+phi, 0)
	assertVec4(t, "π/2 twice vs π once", step, direct)
}

func TestRotationStateAccumulates(t *testing.T) {
	p := DefaultParams()
	p.RotateXYSpeed = 2
	p.RotateZWSpeed = 1
	p.RotateXYEnabled = true
	p.RotateZWEnabled = false

	var r RotationState
	r.Advance(0.5, p)
	r.Advance(0.5, p)

	assertNear(t, "angleXY", r.AngleXY, 2)
	assertNear(t, "angleZW held while disabled", r.AngleZW, 0)

	p.RotateZWEnabled = true
	r.Advance(1, p)
	assertNear(t, "angleZW resumes", r.AngleZW, 1)

	r.Reset()
	assertNear(t, "angleXY after reset", r.AngleXY, 0)
	assertNear(t, "angleZW after reset", r.AngleZW, 0)
}
