package bluenoise

import "math"

// buildKernel fills dst (width*height, row-major) with the radially symmetric
// energy kernel
//
//	k(d) = exp(-d/sigma^2) + epsilon/(1+d),  d = x^2 + y^2
//
// evaluated around the wrap-around origin, and rescales it so the total weight
// equals width. The quadrant symmetry means one evaluation per (x, y) pair
// fills all four mirrored positions.
//
// The weight sum is accumulated in float64 over the full padded area; the
// individual tail terms are tiny and there are width*height of them, so a
// narrower accumulator would drift.
func buildKernel(dst []float64, width, height int, sigma, epsilon float64) {
	isigma := 1.0 / (sigma*sigma + 1e-6)

	sum := 0.0
	for y0 := 0; y0 < height/2; y0++ {
		y1 := height - 1 - y0
		dy0 := float64(y0)
		dy1 := dy0 + 1.0
		for x0 := 0; x0 < width/2; x0++ {
			x1 := width - 1 - x0
			dx0 := float64(x0)
			dx1 := dx0 + 1.0

			d00 := dx0*dx0 + dy0*dy0
			d10 := dx1*dx1 + dy0*dy0
			d01 := dx0*dx0 + dy1*dy1
			d11 := dx1*dx1 + dy1*dy1

			k00 := math.Exp(-d00*isigma) + epsilon/(1.0+d00)
			k10 := math.Exp(-d10*isigma) + epsilon/(1.0+d10)
			k01 := math.Exp(-d01*isigma) + epsilon/(1.0+d01)
			k11 := math.Exp(-d11*isigma) + epsilon/(1.0+d11)

			dst[y0*width+x0] = k00
			dst[y0*width+x1] = k10
			dst[y1*width+x0] = k01
			dst[y1*width+x1] = k11

			sum += k00 + k01 + k10 + k11
		}
	}

	iweight := float64(width) / sum
	for i := range dst {
		dst[i] *= iweight
	}
}
