package bluenoise

import (
	"math/rand"
	"sync/atomic"
)

type generatorState uint32

const (
	genIdle generatorState = iota
	genActive
)

// Generator owns all buffers and transform plans for a generation run. It is
// created once per geometry and may run any number of sequential generations;
// no buffer is allocated inside the hot loop. A Generator must not run two
// generations concurrently.
type Generator struct {
	cfg Config

	// Logical output size.
	width  int
	height int

	// Padded power-of-two working size used by the transform.
	padW int
	padH int

	remap  remap
	tilesX int
	tilesY int

	fft *transform2D

	// Frequency-domain energy kernel, built once, read-only afterwards.
	kernelFreq []complex128

	// Per-run buffers, reused in place every greedy step.
	pattern    []float64    // logical binary pattern
	scratch    []float64    // logical copy used by the rank-down phases
	lifted     []float64    // padded spatial buffer (transform input)
	freq       []complex128 // padded half spectrum (transform output / filter product)
	energy     []float64    // padded energy field
	candidates []candidate  // one slot per search tile
	sequence   []int32      // rank -> logical pixel index

	state  atomic.Uint32
	cancel atomic.Uint32
}

// NewGenerator validates the config and allocates a generator: transform
// plans, the frequency-domain kernel, and every buffer a run needs. All
// failures are configuration failures; nothing partially built is returned.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, newError(ErrBadParam, "bluenoise: nil config")
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, newError(ErrBadSize, "bluenoise: invalid image size")
	}
	if cfg.Layers < 1 {
		return nil, newError(ErrBadLayers, "bluenoise: invalid layer count")
	}
	if cfg.ThreadCount <= 0 {
		return nil, newError(ErrBadParam, "bluenoise: invalid thread count")
	}
	if cfg.Sigma <= 0 || cfg.Epsilon < 0 {
		return nil, newError(ErrBadParam, "bluenoise: invalid kernel shape parameters")
	}

	padW := nextPow2(maxInt(cfg.Width, MinSize))
	padH := nextPow2(maxInt(cfg.Height, MinSize))

	g := &Generator{
		cfg:    *cfg,
		width:  cfg.Width,
		height: cfg.Height,
		padW:   padW,
		padH:   padH,
		remap:  newRemap(cfg.Width, cfg.Height, padW, padH),
		tilesX: (cfg.Width + TileSize - 1) / TileSize,
		tilesY: (cfg.Height + TileSize - 1) / TileSize,
	}

	g.fft = newTransform2D(padW, padH, cfg.ThreadCount)

	halfW := padW/2 + 1
	g.kernelFreq = make([]complex128, halfW*padH)
	g.lifted = make([]float64, padW*padH)
	g.freq = make([]complex128, halfW*padH)
	g.energy = make([]float64, padW*padH)

	n := cfg.Width * cfg.Height
	g.pattern = make([]float64, n)
	g.scratch = make([]float64, n)
	g.sequence = make([]int32, n)
	g.candidates = make([]candidate, g.tilesX*g.tilesY)

	// Build the spatial kernel in the lifted buffer, transform it once, and
	// keep only the spectrum.
	buildKernel(g.lifted, padW, padH, cfg.Sigma, cfg.Epsilon)
	g.fft.forward(g.lifted, g.kernelFreq)

	return g, nil
}

// Close releases the generator. The pure-Go generator holds no external
// resources; Close exists for API parity.
func (g *Generator) Close() error {
	return nil
}

// Cancel requests that the in-progress generation stop at the next layer
// boundary. Partial rank state inside a layer is not resumable, so
// cancellation never interrupts a layer.
func (g *Generator) Cancel() {
	if g == nil {
		return
	}
	g.cancel.Store(1)
}

// Generate runs the full multi-phase algorithm over every configured layer and
// returns the normalized mask. The seed must match the configured logical
// size; it is thresholded at 0.5 to form the initial binary pattern.
//
// The call blocks until all layers complete or Cancel is observed between
// layers. The returned error is terminal: there is no partial result.
func (g *Generator) Generate(seed *FloatImage) (*Mask, error) {
	if g == nil {
		return nil, newError(ErrBadGenerator, "bluenoise: nil generator")
	}
	if seed == nil {
		return nil, newError(ErrBadParam, "bluenoise: nil seed image")
	}
	if seed.Width != g.width || seed.Height != g.height || len(seed.Pix) != g.width*g.height {
		return nil, newError(ErrBadSize, "bluenoise: seed size does not match generator size")
	}

	if !g.state.CompareAndSwap(uint32(genIdle), uint32(genActive)) {
		return nil, newError(ErrBadGenerator, "bluenoise: generator busy")
	}
	defer g.state.Store(uint32(genIdle))
	g.cancel.Store(0)

	// Threshold the seed and count the on-pixels.
	setCount := 0
	for i, v := range seed.Pix {
		if v > 0.5 {
			g.pattern[i] = 1
			setCount++
		} else {
			g.pattern[i] = 0
		}
	}

	n := g.width * g.height
	if setCount < 1 || setCount > n/2 {
		return nil, newError(ErrBadSeed, "bluenoise: seed on-pixel count out of range")
	}

	mask := &Mask{
		Width:  g.width,
		Height: g.height,
		Layers: g.cfg.Layers,
		Data:   make([]float64, n*g.cfg.Layers),
	}

	prog := newProgressReporter(g.cfg.ProgressCallback, uint64(setCount*2+n*g.cfg.Layers))

	// The tightening phase runs once; the layer chain reseeds with a level
	// set of the previous layer, which needs no further tightening.
	g.tighten(setCount, prog)

	for l := 0; l < g.cfg.Layers; l++ {
		if g.cancel.Load() != 0 {
			return nil, newError(ErrCanceled, "bluenoise: generation canceled")
		}

		g.rankLayer(setCount, prog)
		g.renderLayer(mask, l)

		if l+1 < g.cfg.Layers {
			g.reseedFromRanks(setCount)
		}
	}

	prog.finish()
	return mask, nil
}

// SeedPattern synthesizes a random binary seed with roughly percent% of the
// pixels set. Placements collide, so the resulting on-count is at most
// width*height*percent/100. The same seed value always produces the same
// pattern.
func SeedPattern(width, height, percent int, seed int64) *FloatImage {
	img := NewFloatImage(width, height)
	rng := rand.New(rand.NewSource(seed))
	rows := height * percent / 100
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			px := rng.Intn(width)
			py := rng.Intn(height)
			img.Pix[py*width+px] = 1
		}
	}
	return img
}

// ThresholdPattern returns a binary copy of img: 1 where the sample exceeds
// the threshold, 0 elsewhere.
func ThresholdPattern(img *FloatImage, threshold float64) *FloatImage {
	out := NewFloatImage(img.Width, img.Height)
	for i, v := range img.Pix {
		if v > threshold {
			out.Pix[i] = 1
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
