package bluenoise

// noRank marks a greedy step that mutates the pattern without recording a
// rank (the tightening phase).
const noRank = -1

// step performs one greedy iteration on pat: recompute the energy field,
// find the extremal pixel under the given policy, write value at the winner,
// and record the rank if one is being assigned.
//
// Step i+1 strictly depends on the mutation made by step i, so steps are
// never run concurrently; only the searches and transforms inside a step are
// parallel.
func (g *Generator) step(pat []float64, mode searchMode, value float64, rank int) {
	g.computeEnergy(pat)
	i := g.search(pat, mode)
	pat[i] = value
	if rank != noRank {
		g.sequence[rank] = int32(i)
	}
}

// tighten is the initial phase: exactly setCount swap-pairs, each filling the
// largest void and then dissolving the tightest cluster. The on-pixel count
// is conserved by every pair. The budget is fixed; there is no convergence
// test.
func (g *Generator) tighten(setCount int, prog *progressReporter) {
	for i := 0; i < setCount; i++ {
		g.step(g.pattern, voidSearch, 1, noRank)
		g.step(g.pattern, clusterSearch, 0, noRank)
		prog.add(2)
	}
}

// rankLayer assigns the full rank sequence for one layer, leaving the
// stabilized pattern in place for the layer chain.
func (g *Generator) rankLayer(setCount int, prog *progressReporter) {
	n := g.width * g.height
	half := n / 2

	// Rank-down: dissolve the stabilized pattern one cluster pixel at a time,
	// on a copy so the pattern itself survives for the rank-up phase. The
	// last pixel standing gets rank 0.
	copy(g.scratch, g.pattern)
	for i := 0; i < setCount; i++ {
		g.step(g.scratch, clusterSearch, 0, setCount-i-1)
		prog.add(1)
	}

	// Rank-up: fill voids in the stabilized pattern until half the pixels
	// are set, continuing the rank sequence upward.
	for i := setCount; i < half; i++ {
		g.step(g.pattern, voidSearch, 1, i)
		prog.add(1)
	}

	// Complement: invert the half-full pattern once, then dissolve it. Every
	// remaining unranked pixel is on in the inverted pattern, and removing
	// the tightest cluster first continues the ordering.
	for i, v := range g.pattern {
		g.scratch[i] = 1 - v
	}
	for i := half; i < n; i++ {
		g.step(g.scratch, clusterSearch, 0, i)
		prog.add(1)
	}
}

// renderLayer scatters rank/(n-1) to each ranked position of layer l.
func (g *Generator) renderLayer(mask *Mask, l int) {
	n := g.width * g.height
	out := mask.Data[l*n : (l+1)*n]
	inv := 1.0 / float64(n-1)
	for rank, pos := range g.sequence {
		out[pos] = float64(rank) * inv
	}
}

// reseedFromRanks rebuilds the binary pattern as the level set of the current
// rank field at the original on-fraction: the setCount lowest-ranked pixels
// are on. This is how layer l seeds layer l+1 while keeping the on-count
// exact.
func (g *Generator) reseedFromRanks(setCount int) {
	for i := range g.pattern {
		g.pattern[i] = 0
	}
	for rank := 0; rank < setCount; rank++ {
		g.pattern[g.sequence[rank]] = 1
	}
}
