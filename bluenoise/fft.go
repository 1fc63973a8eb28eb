package bluenoise

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/dsp/fourier"
)

// transform2D is a reusable 2D real<->complex Fourier transform over fixed
// power-of-two dimensions.
//
// The forward transform keeps only the non-redundant half spectrum: width/2+1
// complex coefficients per row, height rows, row-major. Rows use real-input
// plans, columns use complex plans. Plans carry internal scratch, so one plan
// pair is allocated per worker and a worker only ever uses its own pair.
type transform2D struct {
	width  int
	height int
	halfW  int

	rowPlans []*fourier.FFT
	colPlans []*fourier.CmplxFFT

	colIn  [][]complex128
	colOut [][]complex128
	rowOut [][]float64
}

func newTransform2D(width, height, workers int) *transform2D {
	if workers < 1 {
		workers = 1
	}
	t := &transform2D{
		width:    width,
		height:   height,
		halfW:    width/2 + 1,
		rowPlans: make([]*fourier.FFT, workers),
		colPlans: make([]*fourier.CmplxFFT, workers),
		colIn:    make([][]complex128, workers),
		colOut:   make([][]complex128, workers),
		rowOut:   make([][]float64, workers),
	}
	for w := 0; w < workers; w++ {
		t.rowPlans[w] = fourier.NewFFT(width)
		t.colPlans[w] = fourier.NewCmplxFFT(height)
		t.colIn[w] = make([]complex128, height)
		t.colOut[w] = make([]complex128, height)
		t.rowOut[w] = make([]float64, width)
	}
	return t
}

// parallelFor runs fn(worker, index) for every index in [0, n), distributing
// indices dynamically over the transform's workers. Results must not depend on
// which worker handles which index.
func (t *transform2D) parallelFor(n int, fn func(worker, index int)) {
	workers := len(t.rowPlans)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(0, i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(worker, i)
			}
		}(w)
	}
	wg.Wait()
}

// forward computes the half-spectrum DFT of src (width*height reals) into dst
// (halfW*height complexes). src is not modified.
func (t *transform2D) forward(src []float64, dst []complex128) {
	// Row pass: real FFT of each row straight into the destination rows.
	t.parallelFor(t.height, func(worker, y int) {
		t.rowPlans[worker].Coefficients(dst[y*t.halfW:y*t.halfW+t.halfW], src[y*t.width:y*t.width+t.width])
	})

	// Column pass: complex FFT down each retained column.
	t.parallelFor(t.halfW, func(worker, x int) {
		in := t.colIn[worker]
		out := t.colOut[worker]
		for y := 0; y < t.height; y++ {
			in[y] = dst[y*t.halfW+x]
		}
		t.colPlans[worker].Coefficients(out, in)
		for y := 0; y < t.height; y++ {
			dst[y*t.halfW+x] = out[y]
		}
	})
}

// inverse computes the inverse transform of src (halfW*height complexes) into
// dst (width*height reals), rescaling by 1/(width*height) so that
// inverse(forward(x)) == x. src is clobbered by the column pass.
func (t *transform2D) inverse(src []complex128, dst []float64) {
	t.parallelFor(t.halfW, func(worker, x int) {
		in := t.colIn[worker]
		out := t.colOut[worker]
		for y := 0; y < t.height; y++ {
			in[y] = src[y*t.halfW+x]
		}
		t.colPlans[worker].Sequence(out, in)
		for y := 0; y < t.height; y++ {
			src[y*t.halfW+x] = out[y]
		}
	})

	scale := 1.0 / float64(t.width*t.height)
	t.parallelFor(t.height, func(worker, y int) {
		row := t.rowOut[worker]
		t.rowPlans[worker].Sequence(row, src[y*t.halfW:y*t.halfW+t.halfW])
		dstRow := dst[y*t.width : y*t.width+t.width]
		for x := range dstRow {
			dstRow[x] = row[x] * scale
		}
	})
}
