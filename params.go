package sim

import (
	"encoding/json"
	"fmt"
	"math"
)

// Params is the full tunable parameter set for a Scene. It is plain shared
// state read by every tick; edit it between ticks (same goroutine as the tick
// driver) and the next tick picks the changes up. There are no module-level
// singletons: every component receives the parameters it needs as arguments.
type Params struct {
	// Resolution is the number of lattice points per axis. Values below
	// MinResolution clamp up at generation time.
	Resolution int
	// Mode selects the particle model. Changing it takes effect through
	// Scene.SetMode, which rebuilds the lattice atomically.
	Mode Mode

	// RotateXYSpeed and RotateZWSpeed are angular speeds in radians per
	// second for the two accumulated rotation angles.
	RotateXYSpeed float64
	RotateZWSpeed float64
	// RotateXYEnabled and RotateZWEnabled gate accumulation independently.
	RotateXYEnabled bool
	RotateZWEnabled bool

	// Transform1 and Transform2 are the two live affine transforms; the
	// effective transform is their element-wise blend by Interp.
	Transform1 Mat4
	Transform2 Mat4
	// Interp is the blend fraction: 0 = Transform1, 1 = Transform2.
	// The tick clamps it to [0, 1] before use; TransformPoint itself
	// extrapolates for out-of-range values.
	Interp float64

	// ProjectionFactor scales W's contribution to the perspective divisor.
	ProjectionFactor float64
	// ColorSpeed is the color field's temporal animation speed.
	ColorSpeed float64

	// ReflectionStrength scales the summed specular contributions.
	ReflectionStrength float64
	// ReflectionFalloff is the inverse-square-like attenuation coefficient.
	ReflectionFalloff float64
	// LightIntensity is the shared intensity of the three lights.
	LightIntensity float64
	// LightOrbitSpeed is the shared speed of the closed-form light orbits.
	LightOrbitSpeed float64

	// Styling hints passed through to the renderer, not read by the core
	// math: base point size, edge sharpness, glow amount, overall opacity,
	// and blend factor.
	PointSize   float64
	Sharpness   float64
	Glow        float64
	Opacity     float64
	BlendFactor float64
}

// DefaultParams returns the parameter set both modes start from.
func DefaultParams() *Params {
	return &Params{
		Resolution:         6,
		Mode:               ModeWave4D,
		RotateXYSpeed:      0.4,
		RotateZWSpeed:      0.25,
		RotateXYEnabled:    true,
		RotateZWEnabled:    true,
		Transform1:         Identity4(),
		Transform2:         Identity4(),
		Interp:             0,
		ProjectionFactor:   0.35,
		ColorSpeed:         1.0,
		ReflectionStrength: 1.2,
		ReflectionFalloff:  0.15,
		LightIntensity:     1.0,
		LightOrbitSpeed:    0.6,
		PointSize:          6,
		Sharpness:          0.7,
		Glow:               0.5,
		Opacity:            1,
		BlendFactor:        1,
	}
}

// scalar snapshot keys, excluding the matrix entries.
const (
	keyResolution      = "resolution"
	keyMode            = "mode"
	keyRotXYSpeed      = "rotate_xy_speed"
	keyRotZWSpeed      = "rotate_zw_speed"
	keyRotXYEnabled    = "rotate_xy_enabled"
	keyRotZWEnabled    = "rotate_zw_enabled"
	keyInterp          = "interp"
	keyProjection      = "projection_factor"
	keyColorSpeed      = "color_speed"
	keyReflectStrength = "reflection_strength"
	keyReflectFalloff  = "reflection_falloff"
	keyLightIntensity  = "light_intensity"
	keyLightOrbitSpeed = "light_orbit_speed"
	keyPointSize       = "point_size"
	keySharpness       = "sharpness"
	keyGlow            = "glow"
	keyOpacity         = "opacity"
	keyBlendFactor     = "blend_factor"
)

// matrixKey returns the snapshot key for one matrix entry, e.g. "transform1.02".
func matrixKey(which, row, col int) string {
	return fmt.Sprintf("transform%d.%d%d", which, row, col)
}

// Snapshot flattens the parameter set to a key-value map, the persistence
// contract for export. Booleans encode as 0/1, the mode as its numeric value,
// and the matrices as transform1.rc / transform2.rc entries.
func (p *Params) Snapshot() map[string]float64 {
	m := map[string]float64{
		keyResolution:      float64(p.Resolution),
		keyMode:            float64(p.Mode),
		keyRotXYSpeed:      p.RotateXYSpeed,
		keyRotZWSpeed:      p.RotateZWSpeed,
		keyRotXYEnabled:    boolToFloat(p.RotateXYEnabled),
		keyRotZWEnabled:    boolToFloat(p.RotateZWEnabled),
		keyInterp:          p.Interp,
		keyProjection:      p.ProjectionFactor,
		keyColorSpeed:      p.ColorSpeed,
		keyReflectStrength: p.ReflectionStrength,
		keyReflectFalloff:  p.ReflectionFalloff,
		keyLightIntensity:  p.LightIntensity,
		keyLightOrbitSpeed: p.LightOrbitSpeed,
		keyPointSize:       p.PointSize,
		keySharpness:       p.Sharpness,
		keyGlow:            p.Glow,
		keyOpacity:         p.Opacity,
		keyBlendFactor:     p.BlendFactor,
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[matrixKey(1, r, c)] = p.Transform1.M[r][c]
			m[matrixKey(2, r, c)] = p.Transform2.M[r][c]
		}
	}
	return m
}

// ApplySnapshot applies a flat key-value snapshot to the parameter set.
// Validation happens before any field is mutated: an unknown key, a
// non-finite value, or an out-of-range resolution or mode rejects the whole
// snapshot with a descriptive error and leaves p untouched. Keys absent from
// the snapshot keep their current values.
func (p *Params) ApplySnapshot(m map[string]float64) error {
	next := *p
	for key, val := range m {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("parameter %q: non-finite value", key)
		}
		if err := next.applyKey(key, val); err != nil {
			return err
		}
	}
	*p = next
	return nil
}

// applyKey sets one snapshot key on p, validating range where a range exists.
func (p *Params) applyKey(key string, val float64) error {
	switch key {
	case keyResolution:
		n := int(val)
		if float64(n) != val || n < MinResolution {
			return fmt.Errorf("parameter %q: must be an integer >= %d, got %v", key, MinResolution, val)
		}
		p.Resolution = n
	case keyMode:
		switch Mode(val) {
		case ModeWave4D, ModeIndrasNet:
			p.Mode = Mode(val)
		default:
			return fmt.Errorf("parameter %q: unknown mode %v", key, val)
		}
	case keyRotXYSpeed:
		p.RotateXYSpeed = val
	case keyRotZWSpeed:
		p.RotateZWSpeed = val
	case keyRotXYEnabled:
		p.RotateXYEnabled = val != 0
	case keyRotZWEnabled:
		p.RotateZWEnabled = val != 0
	case keyInterp:
		p.Interp = val
	case keyProjection:
		p.ProjectionFactor = val
	case keyColorSpeed:
		p.ColorSpeed = val
	case keyReflectStrength:
		p.ReflectionStrength = val
	case keyReflectFalloff:
		p.ReflectionFalloff = val
	case keyLightIntensity:
		p.LightIntensity = val
	case keyLightOrbitSpeed:
		p.LightOrbitSpeed = val
	case keyPointSize:
		p.PointSize = val
	case keySharpness:
		p.Sharpness = val
	case keyGlow:
		p.Glow = val
	case keyOpacity:
		p.Opacity = val
	case keyBlendFactor:
		p.BlendFactor = val
	default:
		var which, r, c int
		if _, err := fmt.Sscanf(key, "transform%d.%1d%1d", &which, &r, &c); err == nil &&
			(which == 1 || which == 2) && r >= 0 && r < 4 && c >= 0 && c < 4 &&
			key == matrixKey(which, r, c) {
			if which == 1 {
				p.Transform1.M[r][c] = val
			} else {
				p.Transform2.M[r][c] = val
			}
			return nil
		}
		return fmt.Errorf("parameter %q: unknown key", key)
	}
	return nil
}

// MarshalJSON encodes the parameter set as its flat snapshot map.
func (p *Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Snapshot())
}

// UnmarshalJSON decodes a flat snapshot map and applies it atomically:
// malformed input leaves the parameter set untouched.
func (p *Params) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parameter import: %w", err)
	}
	return p.ApplySnapshot(m)
}

// clampInterp returns the interpolation fraction clamped to [0, 1]. The tick
// clamps before blending; direct TransformPoint callers get extrapolation.
func clampInterp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
