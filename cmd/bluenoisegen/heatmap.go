package main

import (
	"image"
	"math"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// heatmap renders a magnitude spectrum as a perceptual color ramp, dark blue
// through yellow. Magnitudes are normalized by the image maximum and
// compressed with a sqrt so the flat blue-noise shelf stays visible next to
// the DC spike.
func heatmap(spec *bluenoise.FloatImage) *image.RGBA {
	low, _ := colorful.Hex("#10224e")
	high, _ := colorful.Hex("#f5d547")

	max := floats.Max(spec.Pix)
	if max <= 0 {
		max = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			t := math.Sqrt(spec.At(x, y) / max)
			r, g, b := low.BlendLab(high, t).Clamped().RGB255()
			off := img.PixOffset(x, y)
			img.Pix[off+0] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 255
		}
	}
	return img
}
