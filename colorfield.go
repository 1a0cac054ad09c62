package sim

import "math"

// Channel phase offsets spread the three channels a third of a cycle apart so
// the field cycles through hues rather than pulsing gray.
const (
	phaseR = 0
	phaseG = 2 * math.Pi / 3
	phaseB = 4 * math.Pi / 3
)

// intensityFreq scales |p| in the intensity phase term.
const intensityFreq = 3.0

// FieldColor evaluates the deterministic color field at a transformed 4D
// coordinate. Each channel is 0.5 + 0.5*sin(spatial + temporal + channel
// offset); intensity is 0.5 + 0.5*sin(|p|*k - elapsed*colorSpeed). Every
// output is bounded in [0, 1] by construction for finite inputs. For
// elapsed == 0 the result depends on the coordinate alone.
func FieldColor(p Vec4, elapsed, colorSpeed float64) (Color, float64) {
	t := elapsed * colorSpeed
	c := Color{
		R: boundedSin(p.X*2 + t + phaseR),
		G: boundedSin(p.Y*2 + t + phaseG),
		B: boundedSin(p.Z*2 + t + phaseB),
	}
	intensity := boundedSin(p.Len()*intensityFreq - t)
	return c, intensity
}

// boundedSin maps a phase to [0, 1]. Phase arithmetic on extreme finite
// inputs can overflow to Inf, whose sine is NaN; the midpoint stands in so
// the boundedness invariant holds unconditionally.
func boundedSin(phase float64) float64 {
	s := math.Sin(phase)
	if math.IsNaN(s) {
		return 0.5
	}
	return 0.5 + 0.5*s
}
