package bluenoise

// computeEnergy recomputes the full energy field for the given logical
// pattern: lift to the padded size, forward transform, pointwise complex
// multiply against the cached kernel spectrum, inverse transform.
//
// A single pixel flip perturbs the convolution result everywhere (the kernel
// has unbounded discrete support), so the field is recomputed globally and
// exactly on every greedy step rather than patched incrementally.
func (g *Generator) computeEnergy(pattern []float64) {
	g.remap.lift(pattern, g.lifted)
	g.fft.forward(g.lifted, g.freq)

	for i, k := range g.kernelFreq {
		v := g.freq[i]
		r0, i0 := real(v), imag(v)
		r1, i1 := real(k), imag(k)
		g.freq[i] = complex(r0*r1-i0*i1, i0*r1+r0*i1)
	}

	g.fft.inverse(g.freq, g.energy)
}
