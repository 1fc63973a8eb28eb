package bluenoise_test

import (
	"testing"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
)

func TestRankHistogram_UniformOnGeneratedMask(t *testing.T) {
	mask := scenario64(t)
	bins := 16
	hist, err := bluenoise.RankHistogram(mask, bins)
	if err != nil {
		t.Fatalf("RankHistogram: %v", err)
	}
	if len(hist) != bins {
		t.Fatalf("bin count got %d want %d", len(hist), bins)
	}
	total := 0
	for i, h := range hist {
		if h.Bin != i {
			t.Fatalf("bin %d labeled %d", i, h.Bin)
		}
		total += h.Count
	}
	n := mask.Width * mask.Height * mask.Layers
	if total != n {
		t.Fatalf("total count got %d want %d", total, n)
	}
	// A rank bijection spreads evenly; the edge bins cover half the value
	// range of interior bins, so allow them half the expected count.
	want := float64(n) / float64(bins)
	for i, h := range hist {
		lo, hi := want*0.4, want*1.2
		if i == 0 || i == bins-1 {
			lo, hi = want*0.2, want*0.8
		}
		if float64(h.Count) < lo || float64(h.Count) > hi {
			t.Fatalf("bin %d count %d outside [%v, %v]", i, h.Count, lo, hi)
		}
	}
}

func TestRankHistogram_Validation(t *testing.T) {
	if _, err := bluenoise.RankHistogram(nil, 8); bluenoise.ErrorCodeOf(err) != bluenoise.ErrBadParam {
		t.Fatalf("nil mask: got %v want BLUENOISE_ERR_BAD_PARAM", err)
	}
	m := &bluenoise.Mask{Width: 2, Height: 2, Layers: 1, Data: make([]float64, 4)}
	if _, err := bluenoise.RankHistogram(m, 0); bluenoise.ErrorCodeOf(err) != bluenoise.ErrBadParam {
		t.Fatalf("zero bins: got %v want BLUENOISE_ERR_BAD_PARAM", err)
	}
}
