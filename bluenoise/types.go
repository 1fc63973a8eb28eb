package bluenoise

import "runtime"

const (
	// MinSize is the smallest padded working dimension. Requested sizes below
	// it are generated at MinSize and remapped back down.
	MinSize = 64

	// TileSize is the square tile edge used by the extremal search reduction.
	TileSize = 16

	// BatchSize is the number of greedy steps between progress reports and
	// cancellation-independent yield points.
	BatchSize = 512
)

// Config holds the parameters of a generation run.
type Config struct {
	// Width and Height are the logical output dimensions in pixels. Internally
	// the generator works at the next power of two of each, floored at MinSize.
	Width  int
	Height int

	// Layers is the number of decorrelated mask layers to generate.
	Layers int

	// Sigma is the Gaussian spread of the energy kernel.
	Sigma float64

	// Epsilon is the inverse-quadratic tail weight of the energy kernel.
	Epsilon float64

	// ThreadCount is the number of workers used for the per-step parallel
	// stages (transforms and tile search). It does not affect results.
	ThreadCount int

	// ProgressCallback, if non-nil, receives completion percentages in [0,100].
	// Calls are throttled; 100 is always reported once a run completes.
	ProgressCallback func(progress float32)
}

// ConfigInit returns a Config populated with defaults for the given output
// geometry: sigma 2.0, epsilon 0.01, one worker per CPU.
func ConfigInit(width, height, layers int) (Config, error) {
	if width < 1 || height < 1 {
		return Config{}, newError(ErrBadSize, "bluenoise: invalid image size")
	}
	if layers < 1 {
		return Config{}, newError(ErrBadLayers, "bluenoise: invalid layer count")
	}
	return Config{
		Width:       width,
		Height:      height,
		Layers:      layers,
		Sigma:       2.0,
		Epsilon:     0.01,
		ThreadCount: runtime.NumCPU(),
	}, nil
}

// FloatImage is a single-channel image with one float64 sample per pixel,
// stored row-major.
type FloatImage struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFloatImage allocates a zeroed image.
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the sample at (x, y). No bounds checking beyond the slice's own.
func (f *FloatImage) At(x, y int) float64 { return f.Pix[y*f.Width+x] }

// Set stores the sample at (x, y).
func (f *FloatImage) Set(x, y int, v float64) { f.Pix[y*f.Width+x] = v }

// Mask is the generated multi-layer noise image. Each sample is
// rank/(pixelCount-1) in [0,1]; layers are stored sequentially.
type Mask struct {
	Width  int
	Height int
	Layers int
	Data   []float64
}

// Layer returns a copy of layer l as a FloatImage.
func (m *Mask) Layer(l int) *FloatImage {
	n := m.Width * m.Height
	img := NewFloatImage(m.Width, m.Height)
	copy(img.Pix, m.Data[l*n:(l+1)*n])
	return img
}

func isPow2(v int) bool { return v > 0 && v&(v-1) == 0 }

// nextPow2 returns the smallest power of two >= v, for v >= 1.
func nextPow2(v int) int {
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}
