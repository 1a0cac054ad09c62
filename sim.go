package sim

import "math"

// Mode selects which particle model a Scene evaluates.
type Mode uint8

const (
	// ModeWave4D is a 4D hypercube lattice transformed, rotated, and
	// perspective-projected into 3D with a trigonometric color field.
	ModeWave4D Mode = iota
	// ModeIndrasNet is a 3D cube lattice of mirror-like particles lit by
	// three orbiting point lights.
	ModeIndrasNet
)

// String returns the mode's parameter-file name.
func (m Mode) String() string {
	switch m {
	case ModeWave4D:
		return "4d-wave"
	case ModeIndrasNet:
		return "indras-net"
	default:
		return "unknown"
	}
}

// Color represents an RGB color. Core outputs are in [0, 1] for the wave
// color field; the reflection model may exceed 1 and leaves tone mapping to
// the renderer.
type Color struct {
	R, G, B float64
}

// Add returns the channel-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Scale returns the color with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Vec3 is a 3D vector used for projected positions, light positions, and
// view directions.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the vector sum.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns the vector difference.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Mul returns the vector scaled by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector. The zero vector is
// returned unchanged.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Vec4 is a point or direction in 4D space.
type Vec4 struct {
	X, Y, Z, W float64
}

// Add returns the vector sum.
func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }

// Sub returns the vector difference.
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }

// Mul returns the vector scaled by s.
func (v Vec4) Mul(s float64) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product.
func (a Vec4) Dot(b Vec4) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

// Len returns the Euclidean length.
func (v Vec4) Len() float64 { return math.Sqrt(v.Dot(v)) }

// XYZ returns the spatial part, dropping W.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
