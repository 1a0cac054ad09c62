package sim

import (
	"math"
	"testing"
)

// identityWaveParams returns wave-mode params with every transform neutral so
// the pipeline reduces to the bare lattice.
func identityWaveParams(n int) *Params {
	p := DefaultParams()
	p.Mode = ModeWave4D
	p.Resolution = n
	p.Transform1 = Identity4()
	p.Transform2 = Identity4()
	p.Interp = 0
	p.RotateXYEnabled = false
	p.RotateZWEnabled = false
	p.ProjectionFactor = 0
	return p
}

func TestSceneIdentityPipeline(t *testing.T) {
	// n=2, identity matrices, zero angles, projection factor 0: the 16
	// output positions are exactly the base coordinates' xyz, and with
	// elapsed still zero the colors are purely spatial.
	scene := NewScene(identityWaveParams(2))
	scene.Tick(0)

	attrs := scene.Attributes()
	if len(attrs) != 16 {
		t.Fatalf("attribute count = %d, want 16", len(attrs))
	}
	for i, base := range scene.Lattice().Points {
		a := attrs[i]
		if !a.Visible {
			t.Fatalf("particle %d dropped in identity scenario", i)
		}
		if a.Position != base.XYZ() {
			t.Errorf("particle %d position = %+v, want %+v", i, a.Position, base.XYZ())
		}

		wantColor, wantIntensity := FieldColor(base, 0, scene.Params().ColorSpeed)
		if a.Color != wantColor {
			t.Errorf("particle %d color = %+v, want spatial-only %+v", i, a.Color, wantColor)
		}
		assertNear(t, "intensity", a.Intensity, wantIntensity)
	}
}

func TestSceneModeSwitchReplacesBuffer(t *testing.T) {
	scene := NewScene(identityWaveParams(2))
	scene.Tick(0)
	if got := len(scene.Attributes()); got != 16 {
		t.Fatalf("wave buffer = %d, want 16", got)
	}

	scene.SetMode(ModeIndrasNet)
	scene.Tick(1.0 / 60)

	attrs := scene.Attributes()
	if got := len(attrs); got != 8 {
		t.Fatalf("after mode switch buffer = %d, want 8 (n^3)", got)
	}
	// No leftover 4D-wave particle: every output must sit on the cube
	// lattice, whose points all have |component| == 1 for n=2.
	for i, a := range attrs {
		for _, v := range []float64{a.Position.X, a.Position.Y, a.Position.Z} {
			if math.Abs(v) != 1 {
				t.Errorf("particle %d = %+v, not a cube lattice point", i, a.Position)
			}
		}
	}
}

func TestSceneResolutionChangeRebuilds(t *testing.T) {
	scene := NewScene(identityWaveParams(2))
	old := scene.Lattice()

	scene.SetResolution(3)
	if scene.Lattice() == old {
		t.Fatal("lattice not regenerated on resolution change")
	}
	if got := scene.Lattice().Count(); got != 81 {
		t.Errorf("count = %d, want 81", got)
	}

	// Clamp below the minimum.
	scene.SetResolution(0)
	if got := scene.Lattice().Resolution; got != MinResolution {
		t.Errorf("resolution = %d, want clamp to %d", got, MinResolution)
	}
}

func TestSceneTickConvergesImportedParams(t *testing.T) {
	// A snapshot import can change mode and resolution directly on the
	// Params; the next tick must converge the lattice before evaluating.
	scene := NewScene(identityWaveParams(2))
	scene.Tick(0)

	err := scene.Params().ApplySnapshot(map[string]float64{
		"mode":       1,
		"resolution": 3,
	})
	if err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}

	scene.Tick(1.0 / 60)
	if got := len(scene.Attributes()); got != 27 {
		t.Errorf("buffer = %d, want 27 after imported mode+resolution", got)
	}
	if scene.Lattice().Mode != ModeIndrasNet {
		t.Errorf("lattice mode = %v, want ModeIndrasNet", scene.Lattice().Mode)
	}
}

func TestSceneRotationAccumulatesAcrossTicks(t *testing.T) {
	p := identityWaveParams(2)
	p.RotateXYEnabled = true
	p.RotateXYSpeed = math.Pi

	scene := NewScene(p)
	scene.Tick(0.5)
	scene.Tick(0.5)

	assertNear(t, "accumulated angleXY", scene.Rotation().AngleXY, math.Pi)

	scene.ResetRotation()
	assertNear(t, "after reset", scene.Rotation().AngleXY, 0)
}

func TestSceneSingularityDropsParticles(t *testing.T) {
	// Park the lattice exactly on the projection pole: W = -1/factor for
	// every point with W = -1 and factor 1 drops those eight particles and
	// keeps the W = +1 half.
	p := identityWaveParams(2)
	p.ProjectionFactor = 1

	scene := NewScene(p)
	scene.Tick(0)

	dropped := 0
	for _, a := range scene.Attributes() {
		if !a.Visible {
			dropped++
			continue
		}
		if math.IsNaN(a.Position.X) || math.IsInf(a.Position.X, 0) {
			t.Errorf("non-finite position leaked: %+v", a.Position)
		}
	}
	if dropped != 8 {
		t.Errorf("dropped = %d, want the 8 particles at W = -1", dropped)
	}
}

func TestSceneIndrasNetShading(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModeIndrasNet
	p.Resolution = 3
	scene := NewScene(p)
	scene.Tick(1.0 / 60)

	attrs := scene.Attributes()
	if len(attrs) != 27 {
		t.Fatalf("count = %d, want 27", len(attrs))
	}
	for i, a := range attrs {
		if !a.Visible {
			t.Fatalf("particle %d invisible; the mirror lattice never drops particles", i)
		}
		if a.Color.R < 0 || a.Color.G < 0 || a.Color.B < 0 {
			t.Errorf("particle %d has negative channel: %+v", i, a.Color)
		}
	}

	// Lights advanced along their orbits and are exposed.
	lights := scene.Lights()
	want := OrbitLights(scene.Elapsed(), p.LightOrbitSpeed)
	if lights != want {
		t.Errorf("Lights() = %+v, want %+v", lights, want)
	}
}

func TestSceneZeroIntensityAmbientField(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModeIndrasNet
	p.Resolution = 2
	p.LightIntensity = 0
	scene := NewScene(p)
	scene.Tick(0.25)

	for i, a := range scene.Attributes() {
		if a.Color != ambientTint {
			t.Errorf("particle %d = %+v, want ambient %+v with lights off", i, a.Color, ambientTint)
		}
	}
}

func TestSceneNilParamsDefaults(t *testing.T) {
	scene := NewScene(nil)
	if scene.Params() == nil {
		t.Fatal("nil params not defaulted")
	}
	if got, want := scene.Lattice().Resolution, DefaultParams().Resolution; got != want {
		t.Errorf("resolution = %d, want %d", got, want)
	}
}
