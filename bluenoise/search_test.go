package bluenoise

import (
	"testing"
)

func newSearchTestGenerator(t *testing.T) *Generator {
	t.Helper()
	cfg, err := ConfigInit(64, 64, 1)
	if err != nil {
		t.Fatalf("ConfigInit: %v", err)
	}
	cfg.ThreadCount = 2
	g, err := NewGenerator(&cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestSearch_ClusterPicksMaxEnergyAmongOnPixels(t *testing.T) {
	g := newSearchTestGenerator(t)

	pattern := make([]float64, 64*64)
	for i := range g.energy {
		g.energy[i] = 0
	}

	// The global maximum sits on an off pixel and must not win.
	g.energy[5*64+5] = 100
	g.energy[40*64+9] = 7
	g.energy[12*64+60] = 3
	pattern[40*64+9] = 1
	pattern[12*64+60] = 1

	if got, want := g.search(pattern, clusterSearch), 40*64+9; got != want {
		t.Fatalf("cluster search: got %d want %d", got, want)
	}
}

func TestSearch_VoidPicksMinEnergyAmongOffPixels(t *testing.T) {
	g := newSearchTestGenerator(t)

	pattern := make([]float64, 64*64)
	for i := range g.energy {
		g.energy[i] = 10
	}

	// The global minimum sits on an on pixel and must not win.
	g.energy[3*64+3] = -5
	pattern[3*64+3] = 1
	g.energy[50*64+20] = 1

	if got, want := g.search(pattern, voidSearch), 50*64+20; got != want {
		t.Fatalf("void search: got %d want %d", got, want)
	}
}

func TestSearch_TieBreaksToLowestRowMajorIndex(t *testing.T) {
	g := newSearchTestGenerator(t)

	pattern := make([]float64, 64*64)
	for i := range g.energy {
		g.energy[i] = 0
	}

	// Equal weights in different tiles; (15,15) is in tile (0,0) but has a
	// higher row-major index than (0,16) in tile (1,0).
	a := 15*64 + 15
	b := 0*64 + 16
	pattern[a] = 1
	pattern[b] = 1
	g.energy[a] = 9
	g.energy[b] = 9

	if got := g.search(pattern, clusterSearch); got != b {
		t.Fatalf("tie-break: got %d want %d (lowest row-major index)", got, b)
	}
}

func TestSearch_NoEligiblePixelReturnsNegative(t *testing.T) {
	g := newSearchTestGenerator(t)

	pattern := make([]float64, 64*64)
	if got := g.search(pattern, clusterSearch); got != -1 {
		t.Fatalf("empty cluster search: got %d want -1", got)
	}
}
