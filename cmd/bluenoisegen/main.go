package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
	"github.com/gocarina/gocsv"

	_ "image/jpeg"
)

func main() {
	var (
		inPath       string
		outPath      string
		spectrumPath string
		spectrumX    string
		spectrumY    string
		histPath     string
		presetName   string
		presetsFile  string
		bits         int
		size         int
		width        int
		height       int
		layers       int
		seed         int64
		initPct      int
		sigma        float64
		epsilon      float64
		threads      int
		quiet        bool
	)
	flag.StringVar(&inPath, "in", "", "input seed image (PNG or JPEG; thresholded at 0.5)")
	flag.StringVar(&outPath, "out", "", "output noise image (PNG for 8/16 bits, PFM for 32)")
	flag.StringVar(&spectrumPath, "spectrum", "", "output magnitude-spectrum heatmap (PNG)")
	flag.StringVar(&spectrumX, "spectrum-x", "", "output X-slice spectrum strip for multilayer masks (PNG)")
	flag.StringVar(&spectrumY, "spectrum-y", "", "output Y-slice spectrum strip for multilayer masks (PNG)")
	flag.StringVar(&histPath, "histogram", "", "output rank histogram (CSV)")
	flag.StringVar(&presetName, "preset", "", "named parameter preset (see -presets-file)")
	flag.StringVar(&presetsFile, "presets-file", "", "YAML preset file overriding the built-in presets")
	flag.IntVar(&bits, "bits", 8, "output bit depth: 8, 16 or 32")
	flag.IntVar(&size, "size", 128, "image size (sets both width and height)")
	flag.IntVar(&width, "width", 0, "image width (overrides -size)")
	flag.IntVar(&height, "height", 0, "image height (overrides -size)")
	flag.IntVar(&layers, "layers", 1, "number of decorrelated layers")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	flag.IntVar(&initPct, "init", 10, "initial on-pixel percentage for synthesized seeds")
	flag.Float64Var(&sigma, "sigma", 2.0, "Gaussian sigma of the energy kernel")
	flag.Float64Var(&epsilon, "epsilon", 0.01, "quadratic tail epsilon of the energy kernel")
	flag.IntVar(&threads, "threads", 0, "worker count (0 = all CPUs)")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if presetName != "" {
		p, err := loadPreset(presetsFile, presetName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		// Presets only fill in values the user did not set explicitly.
		if p.Sigma != nil && !set["sigma"] {
			sigma = *p.Sigma
		}
		if p.Epsilon != nil && !set["epsilon"] {
			epsilon = *p.Epsilon
		}
		if p.Init != nil && !set["init"] {
			initPct = *p.Init
		}
		if p.Bits != nil && !set["bits"] {
			bits = *p.Bits
		}
		if p.Layers != nil && !set["layers"] {
			layers = *p.Layers
		}
	}

	if width == 0 {
		width = size
	}
	if height == 0 {
		height = size
	}
	if bits != 8 && bits != 16 && bits != 32 {
		fmt.Fprintf(os.Stderr, "invalid -bits %d (want 8, 16 or 32)\n", bits)
		os.Exit(2)
	}

	var seedImg *bluenoise.FloatImage
	if inPath != "" {
		img, err := loadGray(inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		seedImg = img
		width = img.Width
		height = img.Height
	} else {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		seedImg = bluenoise.SeedPattern(width, height, initPct, seed)
	}

	cfg, err := bluenoise.ConfigInit(width, height, layers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Sigma = sigma
	cfg.Epsilon = epsilon
	if threads > 0 {
		cfg.ThreadCount = threads
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Size: %dx%d Layers: %d Bits: %d Sigma: %g Epsilon: %g Init: %d%% Seed: %d\n",
			width, height, layers, bits, sigma, epsilon, initPct, seed)
		pp := newProgressPrinter()
		cfg.ProgressCallback = pp.report
		defer pp.done()
	}

	gen, err := bluenoise.NewGenerator(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer gen.Close()

	mask, err := gen.Generate(seedImg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if outPath != "" {
		if err := writeMask(outPath, mask, bits); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if spectrumPath != "" {
		if err := writeSpectrum(spectrumPath, mask); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if spectrumX != "" && layers > 1 {
		if err := writeSliceSpectrum(spectrumX, mask, sliceX); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if spectrumY != "" && layers > 1 {
		if err := writeSliceSpectrum(spectrumY, mask, sliceY); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if histPath != "" {
		bins := 1 << bits
		if bits == 32 {
			bins = width * height
		}
		rows, err := bluenoise.RankHistogram(mask, bins)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		f, err := os.Create(histPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = gocsv.Marshal(&rows, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// writeMask saves the mask: a vertical strip PNG at 8/16 bits, or one PFM
// file per layer at 32 bits (layer index appended when layers > 1).
func writeMask(path string, mask *bluenoise.Mask, bits int) error {
	if bits == 32 {
		for l := 0; l < mask.Layers; l++ {
			name := path
			if mask.Layers > 1 {
				name = fmt.Sprintf("%s.%d", path, l)
			}
			f, err := os.Create(name)
			if err != nil {
				return err
			}
			err = mask.WritePFM(f, l)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	strip := image.NewGray16(image.Rect(0, 0, mask.Width, mask.Height*mask.Layers))
	var strip8 *image.Gray
	if bits == 8 {
		strip8 = image.NewGray(strip.Bounds())
	}
	for l := 0; l < mask.Layers; l++ {
		img, err := mask.Gray(l, bits)
		if err != nil {
			return err
		}
		for y := 0; y < mask.Height; y++ {
			for x := 0; x < mask.Width; x++ {
				if strip8 != nil {
					strip8.Set(x, l*mask.Height+y, img.At(x, y))
				} else {
					strip.Set(x, l*mask.Height+y, img.At(x, y))
				}
			}
		}
	}
	if strip8 != nil {
		return writePNG(path, strip8)
	}
	return writePNG(path, strip)
}

func writeSpectrum(path string, mask *bluenoise.Mask) error {
	strip := image.NewRGBA(image.Rect(0, 0, mask.Width, mask.Height*mask.Layers))
	for l := 0; l < mask.Layers; l++ {
		spec, err := bluenoise.ForwardSpectrum(mask.Layer(l))
		if err != nil {
			return err
		}
		heat := heatmap(spec)
		for y := 0; y < spec.Height; y++ {
			for x := 0; x < spec.Width; x++ {
				strip.Set(x, l*mask.Height+y, heat.At(x, y))
			}
		}
	}
	return writePNG(path, strip)
}

type sliceAxis int

const (
	sliceX sliceAxis = iota
	sliceY
)

// writeSliceSpectrum renders the cross-layer spectra the reference diagnostics
// use for multilayer masks: for every row (sliceX) or column (sliceY), a
// width-by-layers (or layers-by-height) slice through the layer stack is
// transformed and the spectra are stacked into one strip.
func writeSliceSpectrum(path string, mask *bluenoise.Mask, axis sliceAxis) error {
	n := mask.Width * mask.Height

	var sliceW, sliceH, count int
	if axis == sliceX {
		sliceW, sliceH, count = mask.Width, mask.Layers, mask.Height
	} else {
		sliceW, sliceH, count = mask.Layers, mask.Height, mask.Width
	}

	strip := image.NewRGBA(image.Rect(0, 0, sliceW, sliceH*count))
	slice := bluenoise.NewFloatImage(sliceW, sliceH)
	for c := 0; c < count; c++ {
		for l := 0; l < mask.Layers; l++ {
			layer := mask.Data[l*n : (l+1)*n]
			if axis == sliceX {
				for x := 0; x < mask.Width; x++ {
					slice.Set(x, l, layer[c*mask.Width+x])
				}
			} else {
				for y := 0; y < mask.Height; y++ {
					slice.Set(l, y, layer[y*mask.Width+c])
				}
			}
		}
		spec, err := bluenoise.ForwardSpectrum(slice)
		if err != nil {
			return err
		}
		heat := heatmap(spec)
		for y := 0; y < sliceH; y++ {
			for x := 0; x < sliceW; x++ {
				strip.Set(x, c*sliceH+y, heat.At(x, y))
			}
		}
	}
	return writePNG(path, strip)
}

func loadGray(path string) (*bluenoise.FloatImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	out := bluenoise.NewFloatImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			out.Set(x, y, float64(g.Y)/65535.0)
		}
	}
	return out, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
