package world

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

// NoiseField is a seeded 2D coherent noise function sampled at grid cells.
// Implementations are stateless after construction.
type NoiseField interface {
	At(x, y int) float64
}

// NoiseFactory builds a field for a seed and spatial scale. Larger scales
// give broader features.
type NoiseFactory func(seed int64, scale float64) NoiseField

// Perlin parameters: persistence, frequency multiplier, octaves.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinField samples Perlin noise at (x/scale, y/scale). Values fall
// roughly in [-1,1].
type PerlinField struct {
	p     *perlin.Perlin
	scale float64
}

// NewPerlinField is the default NoiseFactory.
func NewPerlinField(seed int64, scale float64) NoiseField {
	return PerlinField{
		p:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		scale: scale,
	}
}

func (f PerlinField) At(x, y int) float64 {
	return f.p.Noise2D(float64(x)/f.scale, float64(y)/f.scale)
}

// ValueField is lattice value noise with hermite interpolation, recentred to
// [-1,1] so it shares thresholds with PerlinField. Cheaper and blockier.
type ValueField struct {
	seed  int64
	scale float64
}

// NewValueField is an alternative NoiseFactory.
func NewValueField(seed int64, scale float64) NoiseField {
	return ValueField{seed: seed, scale: scale}
}

func (f ValueField) At(x, y int) float64 {
	return valueNoise2D(float64(x)/f.scale, float64(y)/f.scale, f.seed)*2 - 1
}

// ConstantField returns the same sample everywhere.
type ConstantField float64

func (f ConstantField) At(_, _ int) float64 { return float64(f) }

// ConstantNoise returns a factory that ignores seed and scale.
func ConstantNoise(v float64) NoiseFactory {
	return func(int64, float64) NoiseField { return ConstantField(v) }
}

// valueNoise2D returns a smooth noise value in [0,1] for the given coordinates.
func valueNoise2D(x, y float64, seed int64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	// Hermite smoothstep.
	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	n00 := latticeValue(xi, yi, seed)
	n10 := latticeValue(xi+1, yi, seed)
	n01 := latticeValue(xi, yi+1, seed)
	n11 := latticeValue(xi+1, yi+1, seed)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

// latticeValue returns a pseudo-random value in [0,1] for integer coordinates.
func latticeValue(x, y int, seed int64) float64 {
	h := uint64(seed)                  // #nosec G115 -- bit mixing
	h ^= uint64(x) * 0x517cc1b727220a95 // #nosec G115 -- bit mixing
	h ^= uint64(y) * 0x6c62272e07bb0142 // #nosec G115 -- bit mixing
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}
