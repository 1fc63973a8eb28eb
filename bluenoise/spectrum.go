package bluenoise

import (
	"math"
	"runtime"

	"gonum.org/v1/gonum/stat"
)

// ForwardSpectrum returns the magnitude spectrum of img, recentered so the
// zero frequency sits at (width/2, height/2). It is a read-only diagnostic:
// generation state is never touched, and the input must already be a power of
// two in both dimensions because no padding or remapping is applied here.
func ForwardSpectrum(img *FloatImage) (*FloatImage, error) {
	if img == nil {
		return nil, newError(ErrBadParam, "bluenoise: nil image")
	}
	w, h := img.Width, img.Height
	if !isPow2(w) || !isPow2(h) {
		return nil, newError(ErrNotPow2, "bluenoise: spectrum requires power-of-two dimensions")
	}
	if len(img.Pix) != w*h {
		return nil, newError(ErrBadSize, "bluenoise: image buffer size mismatch")
	}

	fft := newTransform2D(w, h, runtime.NumCPU())
	halfW := w/2 + 1
	freq := make([]complex128, halfW*h)
	fft.forward(img.Pix, freq)

	// Expand the half spectrum through conjugate symmetry
	// (F[w-u, h-v] = conj(F[u, v])) and shift so DC lands at the center.
	out := NewFloatImage(w, h)
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			su, sv := u, v
			if su >= halfW {
				su = w - su
				sv = (h - sv) % h
			}
			c := freq[sv*halfW+su]
			mag := math.Hypot(real(c), imag(c))
			out.Pix[((v+h/2)%h)*w+(u+w/2)%w] = mag
		}
	}
	return out, nil
}

// SpectrumProfile reduces a centered magnitude spectrum to a radial profile of
// bins mean magnitudes, bin 0 holding the lowest frequencies. Useful for
// checking the blue-noise shape: a good mask has a deep well in the first
// bins and a roughly flat tail.
func SpectrumProfile(spec *FloatImage, bins int) ([]float64, error) {
	if spec == nil {
		return nil, newError(ErrBadParam, "bluenoise: nil spectrum")
	}
	if bins < 1 {
		return nil, newError(ErrBadParam, "bluenoise: invalid bin count")
	}

	cx := float64(spec.Width) / 2
	cy := float64(spec.Height) / 2
	maxR := math.Min(cx, cy)

	sums := make([]float64, bins)
	counts := make([]float64, bins)
	for y := 0; y < spec.Height; y++ {
		dy := float64(y) - cy
		for x := 0; x < spec.Width; x++ {
			dx := float64(x) - cx
			r := math.Hypot(dx, dy)
			if r >= maxR {
				continue
			}
			b := int(r / maxR * float64(bins))
			sums[b] += spec.At(x, y)
			counts[b]++
		}
	}
	for i := range sums {
		if counts[i] > 0 {
			sums[i] /= counts[i]
		}
	}
	return sums, nil
}

// SpectrumCorrelation returns the Pearson correlation between two spectra of
// identical dimensions, for comparing a generated mask against a known-good
// reference.
func SpectrumCorrelation(a, b *FloatImage) (float64, error) {
	if a == nil || b == nil {
		return 0, newError(ErrBadParam, "bluenoise: nil spectrum")
	}
	if a.Width != b.Width || a.Height != b.Height {
		return 0, newError(ErrBadSize, "bluenoise: spectrum size mismatch")
	}
	return stat.Correlation(a.Pix, b.Pix, nil), nil
}
