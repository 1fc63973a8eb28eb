package bluenoise

// HistogramBin is one row of a rank-value histogram. The csv tags match the
// columns written by the CLI's -histogram output.
type HistogramBin struct {
	Bin   int `csv:"bin"`
	Count int `csv:"count"`
}

// RankHistogram buckets every sample of every layer into bins equal-width
// bins over [0,1]. A well-formed mask layer is a rank bijection, so each bin
// should hold pixelCount*layers/bins samples give or take rounding; skew
// indicates a broken rank assignment.
func RankHistogram(m *Mask, bins int) ([]HistogramBin, error) {
	if m == nil {
		return nil, newError(ErrBadParam, "bluenoise: nil mask")
	}
	if bins < 1 {
		return nil, newError(ErrBadParam, "bluenoise: invalid bin count")
	}

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Bin = i
	}
	for _, v := range m.Data {
		b := int(v*float64(bins-1) + 0.5)
		if b < 0 {
			b = 0
		} else if b >= bins {
			b = bins - 1
		}
		out[b].Count++
	}
	return out, nil
}
