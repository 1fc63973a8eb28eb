package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
)

func main() {
	var (
		size       int
		layers     int
		iters      int
		threads    int
		initPct    int
		sigma      float64
		epsilon    float64
		cpuprofile string
		memprofile string
	)
	flag.IntVar(&size, "size", 64, "square mask size")
	flag.IntVar(&layers, "layers", 1, "layer count")
	flag.IntVar(&iters, "iters", 1, "generation iterations")
	flag.IntVar(&threads, "threads", 0, "worker count (0 = all CPUs)")
	flag.IntVar(&initPct, "init", 10, "initial on-pixel percentage")
	flag.Float64Var(&sigma, "sigma", 2.0, "kernel sigma")
	flag.Float64Var(&epsilon, "epsilon", 0.01, "kernel epsilon")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional CPU profile output path")
	flag.StringVar(&memprofile, "memprofile", "", "optional memory profile output path")
	flag.Parse()

	if iters <= 0 {
		fmt.Fprintln(os.Stderr, "iters must be > 0")
		os.Exit(2)
	}

	cfg, err := bluenoise.ConfigInit(size, size, layers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Sigma = sigma
	cfg.Epsilon = epsilon
	if threads > 0 {
		cfg.ThreadCount = threads
	}

	gen, err := bluenoise.NewGenerator(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer gen.Close()

	seed := bluenoise.SeedPattern(size, size, initPct, 1)

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := gen.Generate(seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)

	// Approximate greedy-step count per generation: 2P tightening steps plus
	// one ranking step per pixel per layer.
	setCount := 0
	for _, v := range seed.Pix {
		if v > 0.5 {
			setCount++
		}
	}
	steps := float64(2*setCount+size*size*layers) * float64(iters)

	fmt.Printf("size=%dx%d layers=%d iters=%d threads=%d\n", size, size, layers, iters, cfg.ThreadCount)
	fmt.Printf("total=%v per-iter=%v steps/s=%.0f\n",
		elapsed, elapsed/time.Duration(iters), steps/elapsed.Seconds())

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
