package sim

import "math"

// Light is one of the three moving point lights in the mirror-lattice mode.
// Color is fixed per light; Position is recomputed every tick from the
// closed-form orbit, never integrated, so long runs accumulate no drift.
type Light struct {
	Position Vec3
	Color    Color
}

// shininess is the specular exponent. Higher values tighten the highlight.
const shininess = 24.0

// ambientTint is the faint base reflectivity every particle shows even with
// all lights off.
var ambientTint = Color{R: 0.04, G: 0.05, B: 0.08}

// lightColors are the fixed per-light colors: warm, green, and cold blue.
var lightColors = [3]Color{
	{R: 1.0, G: 0.45, B: 0.35},
	{R: 0.35, G: 1.0, B: 0.5},
	{R: 0.4, G: 0.55, B: 1.0},
}

// lightOrbits holds per-light, per-axis sinusoidal frequency, phase, and
// amplitude. Distinct frequencies keep the three paths from ever locking
// into the same figure.
var lightOrbits = [3][3]struct{ freq, phase, amp float64 }{
	{{0.70, 0.0, 2.0}, {1.10, 1.0, 1.5}, {0.90, 0.5, 2.0}},
	{{1.30, 2.1, 1.8}, {0.60, 0.0, 2.2}, {1.00, 3.6, 1.6}},
	{{0.85, 4.2, 2.2}, {1.45, 2.5, 1.7}, {0.55, 1.2, 2.4}},
}

// OrbitLights returns the three lights at their orbit positions for the given
// elapsed time and shared orbit speed. Pure function of its inputs: the same
// (elapsed, speed) pair always yields the same positions.
func OrbitLights(elapsed, orbitSpeed float64) [3]Light {
	t := elapsed * orbitSpeed
	var lights [3]Light
	for i := range lights {
		o := &lightOrbits[i]
		lights[i] = Light{
			Position: Vec3{
				X: o[0].amp * math.Sin(o[0].freq*t+o[0].phase),
				Y: o[1].amp * math.Sin(o[1].freq*t+o[1].phase),
				Z: o[2].amp * math.Sin(o[2].freq*t+o[2].phase),
			},
			Color: lightColors[i],
		}
	}
	return lights
}

// Reflect computes the mirror-particle shading for one particle: per light, a
// specular term max(dot(reflectDir, viewDir), 0)^shininess attenuated by
// lightIntensity / (1 + distance²·falloff), summed over the three lights,
// scaled by reflectionStrength, plus the ambient tint.
//
// Each particle acts as an infinitesimal sphere whose visible normal faces
// the viewer; particles reflect the light sources directly, not each other.
// With lightIntensity zero the result is the ambient tint alone. Channels
// never go negative; there is no upper clamp, tone mapping belongs to the
// renderer.
func Reflect(pos Vec3, viewDir Vec3, lights *[3]Light, reflectionStrength, lightIntensity, falloff float64) Color {
	out := ambientTint
	if lightIntensity == 0 || reflectionStrength == 0 {
		return out
	}

	v := viewDir.Norm()
	n := v // sphere normal at the point facing the viewer

	for i := range lights {
		toLight := lights[i].Position.Sub(pos)
		distSq := toLight.Dot(toLight)
		l := toLight.Norm()

		// Reflection of the light direction about the normal.
		r := n.Mul(2 * l.Dot(n)).Sub(l)
		spec := math.Max(r.Dot(v), 0)
		if spec == 0 {
			continue
		}
		spec = math.Pow(spec, shininess)

		atten := lightIntensity / (1 + distSq*falloff)
		out = out.Add(lights[i].Color.Scale(spec * atten * reflectionStrength))
	}

	// Negative strength or light colors must not push channels below zero.
	if out.R < 0 {
		out.R = 0
	}
	if out.G < 0 {
		out.G = 0
	}
	if out.B < 0 {
		out.B = 0
	}
	return out
}
