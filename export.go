package sim

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
)

// GIFConfig controls offline animated-GIF capture of a scene.
type GIFConfig struct {
	// Width and Height are the frame size in pixels. Zero values default
	// to 256.
	Width, Height int
	// Frames is the number of ticks to capture. Zero defaults to 60.
	Frames int
	// DT is the simulated seconds per tick. Zero defaults to 1/30.
	DT float64
	// Delay is the per-frame delay in 100ths of a second. Zero defaults
	// to 3 (~30 fps playback).
	Delay int
}

// ExportGIF ticks the scene Frames times, software-rasterizes each attribute
// buffer with the same camera model as [Renderer], and encodes the result as
// an animated GIF. It needs no display or GPU, so it doubles as an end-to-end
// exercise of the whole pipeline in headless environments.
func ExportGIF(w io.Writer, scene *Scene, cfg GIFConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 256
	}
	if cfg.Height <= 0 {
		cfg.Height = 256
	}
	if cfg.Frames <= 0 {
		cfg.Frames = 60
	}
	if cfg.DT <= 0 {
		cfg.DT = 1.0 / 30
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 3
	}

	anim := gif.GIF{
		Image: make([]*image.Paletted, 0, cfg.Frames),
		Delay: make([]int, 0, cfg.Frames),
	}

	accum := make([]float64, cfg.Width*cfg.Height*3)

	for f := 0; f < cfg.Frames; f++ {
		scene.Tick(cfg.DT)
		for i := range accum {
			accum[i] = 0
		}
		rasterize(accum, cfg.Width, cfg.Height, scene.Attributes(), scene.Params())

		frame := image.NewPaletted(image.Rect(0, 0, cfg.Width, cfg.Height), palette.Plan9)
		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				o := (y*cfg.Width + x) * 3
				frame.Set(x, y, color.RGBA{
					R: toByte(accum[o]),
					G: toByte(accum[o+1]),
					B: toByte(accum[o+2]),
					A: 255,
				})
			}
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, cfg.Delay)
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("gif export: %w", err)
	}
	return nil
}

// rasterize additively splats every visible particle into the RGB
// accumulation buffer, mirroring the Renderer's perspective camera.
func rasterize(accum []float64, width, height int, attrs []RenderAttributes, p *Params) {
	halfW := float64(width) / 2
	halfH := float64(height) / 2
	screenScale := min(halfW, halfH) * 1.6
	gain := p.Opacity * p.BlendFactor

	for i := range attrs {
		a := &attrs[i]
		if !a.Visible {
			continue
		}
		depth := viewDistance - a.Position.Z
		if depth <= 0 {
			continue
		}
		persp := screenScale / depth

		cx := halfW + a.Position.X*persp
		cy := halfH - a.Position.Y*persp
		// Same size convention as Renderer: pixels at the camera distance.
		size := a.Size * viewDistance / depth
		if size < 1 {
			size = 1
		}

		alpha := a.Intensity * gain
		if alpha <= 0 {
			continue
		}

		x0, x1 := int(cx-size/2), int(cx+size/2)
		y0, y1 := int(cy-size/2), int(cy+size/2)
		for y := y0; y <= y1; y++ {
			if y < 0 || y >= height {
				continue
			}
			for x := x0; x <= x1; x++ {
				if x < 0 || x >= width {
					continue
				}
				o := (y*width + x) * 3
				accum[o] += a.Color.R * alpha
				accum[o+1] += a.Color.G * alpha
				accum[o+2] += a.Color.B * alpha
			}
		}
	}
}

// toByte clamps a [0, 1]-ish accumulated channel to an 8-bit value.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
