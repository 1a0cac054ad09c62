package sim

import "math"

// RenderAttributes is the per-particle output record handed to the rendering
// surface: a projected position, color, intensity, and point-size hint.
// Recomputed every tick; it has no identity beyond a single frame other than
// its index, which always matches the lattice enumeration order.
type RenderAttributes struct {
	Position  Vec3
	Color     Color
	Intensity float64
	Size      float64
	// Visible is false when the projection singularity produced a
	// non-finite position this frame and the particle was dropped.
	Visible bool
}

// viewDistance places the implicit viewer on the +Z axis for the
// mirror-lattice shading.
const viewDistance = 4.0

// Scene owns a particle model: the immutable base lattice for the current
// (mode, resolution) pair, the accumulated rotation angles, elapsed time, and
// the per-tick attribute buffer.
//
// Execution is single-threaded and frame-driven: an external clock calls
// Tick once per display refresh, and every component runs synchronously
// within it. Parameter edits are plain field writes on the Params between
// ticks; mode and resolution changes rebuild the lattice atomically before
// the next tick's evaluation, so a tick never observes a half-regenerated
// lattice. Cancellation is simply to stop calling Tick.
type Scene struct {
	params   *Params
	lattice  *Lattice
	rotation RotationState
	elapsed  float64
	lights   [3]Light
	attrs    []RenderAttributes
}

// NewScene creates a scene, generating the lattice for the parameter set's
// mode and resolution. A nil params uses DefaultParams.
func NewScene(params *Params) *Scene {
	if params == nil {
		params = DefaultParams()
	}
	s := &Scene{params: params}
	s.rebuild()
	return s
}

// rebuild discards and regenerates the lattice and attribute buffer for the
// current params. The previous particle set is fully replaced.
func (s *Scene) rebuild() {
	s.lattice = GenerateLattice(s.params.Mode, s.params.Resolution)
	s.attrs = make([]RenderAttributes, s.lattice.Count())
}

// Params returns the scene's live parameter set for editing between ticks.
func (s *Scene) Params() *Params {
	return s.params
}

// Lattice returns the current base lattice.
func (s *Scene) Lattice() *Lattice {
	return s.lattice
}

// Elapsed returns the accumulated simulation time in seconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Rotation returns the accumulated rotation angles.
func (s *Scene) Rotation() RotationState {
	return s.rotation
}

// ResetRotation zeroes both accumulated rotation angles.
func (s *Scene) ResetRotation() {
	s.rotation.Reset()
}

// Lights returns the light positions computed by the most recent tick.
// Meaningful in ModeIndrasNet only.
func (s *Scene) Lights() [3]Light {
	return s.lights
}

// SetMode switches the particle model. The lattice and attribute buffer are
// discarded and rebuilt immediately; no particle from the previous mode
// survives into the next tick's output.
func (s *Scene) SetMode(m Mode) {
	if m == s.params.Mode {
		return
	}
	s.params.Mode = m
	s.rebuild()
}

// SetResolution changes the points-per-axis count and rebuilds the lattice.
// Values below MinResolution clamp up.
func (s *Scene) SetResolution(n int) {
	if n < MinResolution {
		n = MinResolution
	}
	s.params.Resolution = n
	if n != s.lattice.Resolution {
		s.rebuild()
	}
}

// Attributes returns the per-particle output buffer filled by the most recent
// Tick. Index i corresponds to lattice point i. The slice is reused across
// ticks; callers that need a stable copy must make one.
func (s *Scene) Attributes() []RenderAttributes {
	return s.attrs
}

// Tick advances elapsed time and the accumulated angles by dt seconds, then
// recomputes every particle's render attributes. Each particle depends only
// on its own base coordinate and the tick-global parameters, so evaluation
// order is immaterial.
func (s *Scene) Tick(dt float64) {
	// Parameter imports may have changed mode or resolution directly;
	// converge the lattice before evaluating so the buffer swap stays
	// atomic with respect to this tick.
	if s.params.Mode != s.lattice.Mode || max(s.params.Resolution, MinResolution) != s.lattice.Resolution {
		s.rebuild()
	}

	s.elapsed += dt
	p := s.params

	switch s.lattice.Mode {
	case ModeIndrasNet:
		s.tickIndrasNet(p)
	default:
		s.rotation.Advance(dt, p)
		s.tickWave4D(p)
	}
}

// tickWave4D evaluates the transform -> project -> color pipeline on every
// 4D lattice point.
func (s *Scene) tickWave4D(p *Params) {
	interp := clampInterp(p.Interp)
	for i, base := range s.lattice.Points {
		q := TransformPoint(base, p.Transform1, p.Transform2, interp, s.rotation.AngleXY, s.rotation.AngleZW)

		pos, depth, ok := Project(q, p.ProjectionFactor)
		if !ok {
			s.attrs[i] = RenderAttributes{}
			continue
		}

		col, intensity := FieldColor(q, s.elapsed, p.ColorSpeed)

		// The divisor doubles as the size hint; its singularity falls
		// under the same finite guard as the position.
		size := p.PointSize / math.Abs(depth)
		if math.IsInf(size, 0) || math.IsNaN(size) {
			s.attrs[i] = RenderAttributes{}
			continue
		}

		s.attrs[i] = RenderAttributes{
			Position:  pos,
			Color:     col,
			Intensity: intensity,
			Size:      size,
			Visible:   true,
		}
	}
}

// tickIndrasNet shades every cube lattice point against the three orbiting
// lights. The lattice itself never moves; all motion comes from the lights.
func (s *Scene) tickIndrasNet(p *Params) {
	s.lights = OrbitLights(s.elapsed, p.LightOrbitSpeed)
	viewPos := Vec3{Z: viewDistance}

	for i, base := range s.lattice.Points {
		pos := base.XYZ()
		viewDir := viewPos.Sub(pos).Norm()
		col := Reflect(pos, viewDir, &s.lights, p.ReflectionStrength, p.LightIntensity, p.ReflectionFalloff)

		s.attrs[i] = RenderAttributes{
			Position:  pos,
			Color:     col,
			Intensity: 1,
			Size:      p.PointSize,
			Visible:   true,
		}
	}
}
