package core

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Soup names a strategy for filling a grid with random live cells.
type Soup string

const (
	// SoupUniform sets every cell alive with probability one half.
	SoupUniform Soup = "uniform"
	// SoupNoise thresholds 2D Perlin noise, producing clustered blobs.
	SoupNoise Soup = "noise"
)

// ParseSoup maps a name to a Soup. Unknown names report false.
func ParseSoup(name string) (Soup, bool) {
	switch Soup(name) {
	case SoupUniform, SoupNoise:
		return Soup(name), true
	}
	return "", false
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseFrequency = 0.12
)

// FillNoise fills a w*h row-major buffer with 0/1 values by sampling Perlin
// noise and marking samples above threshold as alive. Noise values fall
// roughly in [-1, 1], so a threshold of 0 yields about half live cells.
func FillNoise(buf []uint8, w, h int, seed int64, threshold float64) {
	if w <= 0 || h <= 0 || len(buf) < w*h {
		return
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := p.Noise2D(float64(x)*noiseFrequency, float64(y)*noiseFrequency)
			if v > threshold {
				buf[y*w+x] = 1
				continue
			}
			buf[y*w+x] = 0
		}
	}
}

// Fill populates buf using the named soup. Unknown soups fall back to
// SoupUniform.
func Fill(buf []uint8, w, h int, seed int64, soup Soup) {
	if soup == SoupNoise {
		FillNoise(buf, w, h, seed, 0)
		return
	}
	FillBinary(NewRNG(seed).Source(), buf)
}
