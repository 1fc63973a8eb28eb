// Package bluenoise generates void-and-cluster blue-noise dither masks:
// per-pixel rank fields whose spatial spectrum has minimal low-frequency
// energy and no regular structure, suitable for stochastic sampling and
// dithering.
//
// The generator alternates a global energy recomputation (a spatial
// convolution realized as a spectral filter over the padded power-of-two
// working size) with a parallel extremal-pixel search, and assigns a dense
// rank in [0, pixelCount) to every pixel across four phases. Multiple layers
// are decorrelated by reseeding each layer from a level set of the previous
// layer's rank field.
//
// Typical use:
//
//	cfg, err := bluenoise.ConfigInit(128, 128, 1)
//	...
//	gen, err := bluenoise.NewGenerator(&cfg)
//	...
//	mask, err := gen.Generate(bluenoise.SeedPattern(128, 128, 10, seed))
package bluenoise
