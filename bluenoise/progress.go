package bluenoise

import "runtime"

// progressReporter throttles progress callbacks during a run. Greedy steps
// are sequential, so no locking is needed; the callback is consulted at most
// once per BatchSize steps and whenever the 0.1% minimum delta is crossed,
// and 100% is always reported exactly once at the end.
type progressReporter struct {
	cb    func(float32)
	total uint64
	done  uint64

	sinceReport int
	last        float32
	minDiff     float32
}

func newProgressReporter(cb func(float32), total uint64) *progressReporter {
	return &progressReporter{
		cb:      cb,
		total:   total,
		minDiff: 0.1,
	}
}

// add records n completed steps. Reporting is batched so the callback (and a
// scheduler yield) only happens at step-batch boundaries, keeping the hot
// loop free of per-step overhead.
func (p *progressReporter) add(n int) {
	p.done += uint64(n)
	p.sinceReport += n
	if p.sinceReport < BatchSize {
		return
	}
	p.sinceReport = 0
	runtime.Gosched()

	if p.cb == nil || p.total == 0 {
		return
	}
	value := float32(float64(p.done) / float64(p.total) * 100.0)
	if value >= 100 {
		// The forced 100% is finish's job.
		return
	}
	if value-p.last > p.minDiff {
		p.cb(value)
		p.last = value
	}
}

// finish reports the forced 100% exactly once.
func (p *progressReporter) finish() {
	if p.cb == nil || p.last == 100 {
		return
	}
	p.cb(100)
	p.last = 100
}
