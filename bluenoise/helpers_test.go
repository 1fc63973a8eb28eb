package bluenoise_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/am-sokolov/go-bluenoise/bluenoise"
)

// seed64 returns a 64x64 seed image with exactly count pixels set, placed
// deterministically.
func seed64(t *testing.T, count int) *bluenoise.FloatImage {
	t.Helper()
	img := bluenoise.NewFloatImage(64, 64)
	rng := rand.New(rand.NewSource(42))
	set := 0
	for set < count {
		i := rng.Intn(len(img.Pix))
		if img.Pix[i] == 0 {
			img.Pix[i] = 1
			set++
		}
	}
	return img
}

var (
	scenarioOnce sync.Once
	scenarioMask *bluenoise.Mask
	scenarioErr  error
)

// scenario64 generates (once) the reference scenario: a 64x64 seed with 410
// on-pixels, sigma 2.0, epsilon 0.01, one layer.
func scenario64(t *testing.T) *bluenoise.Mask {
	t.Helper()
	scenarioOnce.Do(func() {
		var cfg bluenoise.Config
		cfg, scenarioErr = bluenoise.ConfigInit(64, 64, 1)
		if scenarioErr != nil {
			return
		}
		var gen *bluenoise.Generator
		gen, scenarioErr = bluenoise.NewGenerator(&cfg)
		if scenarioErr != nil {
			return
		}
		defer gen.Close()
		scenarioMask, scenarioErr = gen.Generate(seed64(t, 410))
	})
	if scenarioErr != nil {
		t.Fatalf("scenario generation: %v", scenarioErr)
	}
	return scenarioMask
}
