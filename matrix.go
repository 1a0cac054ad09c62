package sim

import (
	"math"
	"math/rand/v2"
)

// Mat4 is a 4×4 matrix of reals, row-major. Used as the two live affine
// transforms the wave mode blends between.
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Lerp returns the element-wise linear interpolation between a and b by t.
// t outside [0, 1] extrapolates.
func (a Mat4) Lerp(b Mat4, t float64) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = lerp(a.M[i][j], b.M[i][j], t)
		}
	}
	return r
}

// MulVec returns the matrix-vector product A·v.
func (a Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]*v.W,
		a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]*v.W,
		a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]*v.W,
		a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]*v.W,
	}
}

// Mul returns the matrix product A·B.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// RotateXY rotates the (X, Y) pair of v by angle radians, leaving Z and W
// untouched.
func RotateXY(v Vec4, angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
		W: v.W,
	}
}

// RotateZW rotates the (Z, W) pair of v by angle radians, leaving X and Y
// untouched.
func RotateZW(v Vec4, angle float64) Vec4 {
	s, c := math.Sincos(angle)
	return Vec4{
		X: v.X,
		Y: v.Y,
		Z: v.Z*c - v.W*s,
		W: v.Z*s + v.W*c,
	}
}

// RandomMat4 returns a matrix whose entries are the identity perturbed by
// uniform noise in [-scale, scale]. Used by the "randomize transforms"
// parameter edit.
func RandomMat4(rng *rand.Rand, scale float64) Mat4 {
	m := Identity4()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.M[i][j] += (rng.Float64()*2 - 1) * scale
		}
	}
	return m
}
