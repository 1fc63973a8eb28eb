package bluenoise

import (
	"math/rand"
	"testing"
)

func TestWrapOffset(t *testing.T) {
	cases := []struct {
		p, offset, size int
		want            int
	}{
		{0, 0, 64, 0},
		{10, 4, 64, 6},
		{2, 8, 64, 58},  // negative result wraps
		{70, 0, 64, 6},  // above range wraps
		{0, -8, 64, 8},  // negative offset shifts up
		{63, 63, 64, 0},
	}
	for _, c := range cases {
		if got := wrapOffset(c.p, c.offset, c.size); got != c.want {
			t.Fatalf("wrapOffset(%d,%d,%d): got %d want %d", c.p, c.offset, c.size, got, c.want)
		}
	}
}

func TestRemap_LiftIsInverseOfPaddedIndex(t *testing.T) {
	cases := []struct{ lw, lh, pw, ph int }{
		{64, 64, 64, 64},  // identity
		{32, 32, 64, 64},  // sub-minimum upscale
		{48, 24, 64, 64},  // non-power-of-two logical size
		{100, 60, 128, 64},
	}

	for _, c := range cases {
		r := newRemap(c.lw, c.lh, c.pw, c.ph)

		src := make([]float64, c.lw*c.lh)
		rng := rand.New(rand.NewSource(5))
		for i := range src {
			src[i] = rng.Float64()
		}

		dst := make([]float64, c.pw*c.ph)
		r.lift(src, dst)

		for y := 0; y < c.lh; y++ {
			for x := 0; x < c.lw; x++ {
				got := dst[r.paddedIndex(x, y)]
				want := src[y*c.lw+x]
				if got != want {
					t.Fatalf("%dx%d->%dx%d: lift/paddedIndex disagree at (%d,%d): got %v want %v",
						c.lw, c.lh, c.pw, c.ph, x, y, got, want)
				}
			}
		}
	}
}

func TestRemap_LiftTilesWholePaddedArea(t *testing.T) {
	r := newRemap(32, 32, 64, 64)

	src := make([]float64, 32*32)
	for i := range src {
		src[i] = float64(i + 1)
	}

	dst := make([]float64, 64*64)
	r.lift(src, dst)

	// Every padded sample must come from some logical sample; no zero
	// padding is introduced by the wrap-around remap.
	for i, v := range dst {
		if v == 0 {
			t.Fatalf("padded sample %d not covered by tiling", i)
		}
	}
}
