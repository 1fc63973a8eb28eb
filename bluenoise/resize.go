package bluenoise

// wrapOffset applies the centered wrap-around remap used when the logical size
// differs from the padded working size: p' = (p - offset) mod size, with
// negative results wrapped into range.
func wrapOffset(p, offset, size int) int {
	p = (p - offset) % size
	if p < 0 {
		p += size
	}
	return p
}

// remap converts between logical and padded pixel coordinates. offX/offY
// center the logical area inside the padded area.
type remap struct {
	logicalW, logicalH int
	paddedW, paddedH   int
	offX, offY         int
	identity           bool
}

func newRemap(logicalW, logicalH, paddedW, paddedH int) remap {
	return remap{
		logicalW: logicalW,
		logicalH: logicalH,
		paddedW:  paddedW,
		paddedH:  paddedH,
		offX:     (paddedW - logicalW) / 2,
		offY:     (paddedH - logicalH) / 2,
		identity: logicalW == paddedW && logicalH == paddedH,
	}
}

// paddedIndex returns the padded buffer index holding the sample for logical
// pixel (x, y).
func (r remap) paddedIndex(x, y int) int {
	if r.identity {
		return y*r.paddedW + x
	}
	px := wrapOffset(x, -r.offX, r.paddedW)
	py := wrapOffset(y, -r.offY, r.paddedH)
	return py*r.paddedW + px
}

// lift tiles the logical pattern src over the padded buffer dst so the
// transform always runs at the padded size. Padded position p reads logical
// position ((p - offset) mod padded) mod logical; for logical pixels inside
// the centered window this is the inverse of paddedIndex.
func (r remap) lift(src, dst []float64) {
	if r.identity {
		copy(dst, src)
		return
	}
	for py := 0; py < r.paddedH; py++ {
		ly := wrapOffset(py, r.offY, r.paddedH) % r.logicalH
		dstRow := dst[py*r.paddedW : (py+1)*r.paddedW]
		srcRow := src[ly*r.logicalW : (ly+1)*r.logicalW]
		for px := 0; px < r.paddedW; px++ {
			dstRow[px] = srcRow[wrapOffset(px, r.offX, r.paddedW)%r.logicalW]
		}
	}
}
