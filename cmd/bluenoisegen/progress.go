package main

import (
	"fmt"
	"os"
	"time"
)

// progressPrinter renders throttled generation progress with elapsed and
// estimated remaining time, rewriting one terminal line.
type progressPrinter struct {
	begin    time.Time
	lastTime time.Time
	active   bool
}

func newProgressPrinter() *progressPrinter {
	return &progressPrinter{begin: time.Now()}
}

func (p *progressPrinter) report(pct float32) {
	now := time.Now()
	if pct < 100 && now.Sub(p.lastTime) < 100*time.Millisecond {
		return
	}
	p.lastTime = now
	p.active = true

	elapsed := now.Sub(p.begin)
	var remain time.Duration
	if pct > 0 {
		remain = time.Duration(float64(elapsed) * float64(100-pct) / float64(pct))
	}
	fmt.Fprintf(os.Stderr, "\rProgress: %5.1f %% Time: %s Remain: %s        ",
		pct, elapsed.Round(time.Second), remain.Round(time.Second))
}

func (p *progressPrinter) done() {
	if p.active {
		fmt.Fprintln(os.Stderr)
	}
}
