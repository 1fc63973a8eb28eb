package bluenoise

import "math"

// searchMode selects the extremal-search policy.
type searchMode uint8

const (
	// clusterSearch finds the set pixel in the densest neighborhood: the
	// arg-max of energy over pixels that are currently on.
	clusterSearch searchMode = iota

	// voidSearch finds the largest void: the arg-min of energy over pixels
	// that are currently off, realized as the arg-max of negated energy so
	// both modes share one max reduction.
	voidSearch
)

// candidate is the per-tile reduction result: the winning pixel of one tile
// and its signed weight. index is the row-major logical pixel index, or -1
// when the tile holds no eligible pixel.
type candidate struct {
	weight float64
	index  int32
}

// searchTile reduces one tile to its best candidate. Ineligible pixels never
// win: their weight is -Inf. Ties go to the lowest row-major index, which the
// ascending scan order gives for free.
func (g *Generator) searchTile(pattern []float64, mode searchMode, tx, ty int) candidate {
	x0 := tx * TileSize
	y0 := ty * TileSize
	x1 := x0 + TileSize
	y1 := y0 + TileSize
	if x1 > g.width {
		x1 = g.width
	}
	if y1 > g.height {
		y1 = g.height
	}

	best := candidate{weight: math.Inf(-1), index: -1}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*g.width + x
			on := pattern[i] > 0.5

			var weight float64
			switch mode {
			case clusterSearch:
				if !on {
					continue
				}
				weight = g.energy[g.remap.paddedIndex(x, y)]
			case voidSearch:
				if on {
					continue
				}
				weight = -g.energy[g.remap.paddedIndex(x, y)]
			}

			if weight > best.weight {
				best = candidate{weight: weight, index: int32(i)}
			}
		}
	}
	return best
}

// search runs the two-stage extremal reduction over the whole pattern and
// returns the single winning pixel index.
//
// Stage one reduces each tile independently (workers claim tiles through the
// transform's scheduler; a tile's result does not depend on which worker ran
// it). Stage two is a sequential pass over the tile candidates with the same
// deterministic tie-break: equal weights go to the lowest row-major index.
func (g *Generator) search(pattern []float64, mode searchMode) int {
	tiles := g.tilesX * g.tilesY
	g.fft.parallelFor(tiles, func(worker, t int) {
		g.candidates[t] = g.searchTile(pattern, mode, t%g.tilesX, t/g.tilesX)
	})

	best := candidate{weight: math.Inf(-1), index: -1}
	for _, c := range g.candidates {
		if c.index < 0 {
			continue
		}
		if c.weight > best.weight || (c.weight == best.weight && c.index < best.index) {
			best = c
		}
	}
	return int(best.index)
}
