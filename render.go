package sim

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlendMode selects a compositing operation for particle quads. Each maps to
// a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendAdd    BlendMode = iota // additive / lighter (default for glowing fields)
	BlendNormal                  // source-over (standard alpha blending)
	BlendScreen                  // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendLighter
	}
}

// Renderer draws a RenderAttributes buffer to an ebiten.Image as
// screen-projected tinted quads. It is the repo's reference rendering
// surface; the core never depends on it, and any consumer of the attribute
// buffer can replace it.
type Renderer struct {
	// Blend is the compositing operation for all particle quads.
	Blend BlendMode
	// CameraDistance is the viewer's distance from the origin along +Z.
	CameraDistance float64
	// Focal scales the perspective projection onto the screen.
	Focal float64

	whitePixel *ebiten.Image
}

// NewRenderer creates a renderer with additive blending and a camera matching
// the scene's implicit viewer.
func NewRenderer() *Renderer {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Renderer{
		Blend:          BlendAdd,
		CameraDistance: viewDistance,
		Focal:          1.6,
		whitePixel:     px,
	}
}

// Draw renders every visible particle in attrs to target. The styling hints
// in p (point size already folded into attrs, plus sharpness, glow, opacity,
// blend factor) shape the quads: glow adds a larger faint halo behind each
// point, sharpness fades that halo, opacity and blend factor scale the
// contributed color. Particles behind the camera are skipped.
func (r *Renderer) Draw(target *ebiten.Image, attrs []RenderAttributes, p *Params) {
	bounds := target.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2
	screenScale := min(halfW, halfH) * r.Focal

	var op ebiten.DrawImageOptions
	op.Blend = r.Blend.EbitenBlend()

	gain := p.Opacity * p.BlendFactor

	for i := range attrs {
		a := &attrs[i]
		if !a.Visible {
			continue
		}

		depth := r.CameraDistance - a.Position.Z
		if depth <= 0 {
			continue
		}
		persp := screenScale / depth

		sx := halfW + a.Position.X*persp
		sy := halfH - a.Position.Y*persp
		// Size hints are pixels at the camera distance, shrinking with depth.
		size := a.Size * r.CameraDistance / depth

		alpha := a.Intensity * gain
		if alpha <= 0 || size <= 0 {
			continue
		}

		// Halo first so the core quad draws over it.
		if p.Glow > 0 {
			haloSize := size * (1 + 2*p.Glow)
			haloAlpha := alpha * (1 - p.Sharpness) * 0.5
			if haloAlpha > 0 {
				r.drawQuad(target, &op, a.Color, sx, sy, haloSize, haloAlpha)
			}
		}
		r.drawQuad(target, &op, a.Color, sx, sy, size, alpha)
	}
}

// drawQuad draws one centered, tinted, premultiplied quad.
func (r *Renderer) drawQuad(target *ebiten.Image, op *ebiten.DrawImageOptions, c Color, x, y, size, alpha float64) {
	op.GeoM.Reset()
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)

	ca := float32(alpha)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R)*ca, float32(c.G)*ca, float32(c.B)*ca, ca)

	target.DrawImage(r.whitePixel, op)
}
