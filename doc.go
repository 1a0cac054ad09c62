// Package sim computes a field of particles whose positions, colors, and
// brightness derive from a higher-dimensional geometric model, and hands the
// resulting per-particle attributes to a rendering surface each tick.
//
// Two interchangeable particle models are provided:
//
//   - [ModeWave4D]: a four-dimensional hypercube lattice, blended through two
//     interpolated affine transforms, rotated in the XY and ZW planes, and
//     perspective-projected into three dimensions with a trigonometric color
//     field.
//   - [ModeIndrasNet]: a three-dimensional cube lattice of mirror-like
//     particles lit by three point lights moving on closed-form orbits.
//
// # Quick start
//
//	params := sim.DefaultParams()
//	scene := sim.NewScene(params)
//	// each display refresh:
//	scene.Tick(1.0 / 60)
//	attrs := scene.Attributes()
//
// The attribute buffer is indexed identically to the lattice enumeration
// order, so index i refers to the same base particle on every frame. Renderers
// rely on that contract for stable identity.
//
// All per-tick math lives in pure functions ([TransformPoint], [Project],
// [FieldColor], [Reflect]) that take every input as an argument; [Scene] only
// wires them together and owns the accumulated rotation angles and elapsed
// time. Drive ticks from any loop (an ebiten.Game, the GIF exporter in
// [ExportGIF], or a test) as long as calls are sequential.
//
// A ready-made [Renderer] draws attribute buffers to an ebiten.Image; the
// runnable programs under examples/ show both modes end to end.
package sim
