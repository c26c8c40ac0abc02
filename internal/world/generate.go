package world

import (
	"fmt"
	"math/rand"
)

// BaseMode selects how the science base is sited.
type BaseMode uint8

const (
	BaseRandom BaseMode = iota // random cell with an all-plain neighbourhood
	BaseOrigin                 // fixed at (0,0), neighbourhood cleared
)

// Config holds tuneable generation parameters.
type Config struct {
	// Terrain layer.
	TerrainScale   float64
	PlainThreshold float64 // noise below this → Plain, else Obstacle

	// Resource layer (independent seed, finer scale).
	ResourceScale    float64
	EnergyThreshold  float64 // noise above this may become Energy
	MineralThreshold float64 // noise above this may become Mineral
	ResourceChance   float64 // Bernoulli gate applied per resource trial

	// Base placement.
	BaseMode     BaseMode
	BaseAttempts int // random draws before the exhaustive scan; 0 = 4×cells

	Noise NoiseFactory
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		TerrainScale:     10.0,
		PlainThreshold:   0.2,
		ResourceScale:    5.0,
		EnergyThreshold:  0.4,
		MineralThreshold: 0.2,
		ResourceChance:   0.1,
		BaseMode:         BaseRandom,
		Noise:            NewPerlinField,
	}
}

// Option adjusts the generation config.
type Option func(*Config)

// WithConfig replaces the whole config. Zero scales and a nil Noise fall
// back to defaults.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithNoise sets the noise factory used for both layers.
func WithNoise(f NoiseFactory) Option {
	return func(c *Config) { c.Noise = f }
}

// WithBaseMode selects the base siting strategy.
func WithBaseMode(m BaseMode) Option {
	return func(c *Config) { c.BaseMode = m }
}

// WithBaseAttempts caps the random draws made before scanning.
func WithBaseAttempts(n int) Option {
	return func(c *Config) { c.BaseAttempts = n }
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TerrainScale <= 0 {
		c.TerrainScale = def.TerrainScale
	}
	if c.ResourceScale <= 0 {
		c.ResourceScale = def.ResourceScale
	}
	if c.Noise == nil {
		c.Noise = def.Noise
	}
	return c
}

// New builds a width×height grid and synchronously runs terrain
// classification, resource placement and base placement. The grid is only
// returned once all three passes succeed.
func New(width, height int, rng *rand.Rand, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg = cfg.withDefaults()

	g := NewBlank(width, height)
	generateTerrain(g, rng, cfg)
	placeResources(g, rng, cfg)
	if err := placeBase(g, rng, cfg); err != nil {
		return nil, fmt.Errorf("world %dx%d: %w", width, height, err)
	}
	return g, nil
}

// classify maps a terrain noise sample to a cell.
func classify(noise, plainThreshold float64) Cell {
	if noise < plainThreshold {
		return Plain
	}
	return Obstacle
}

// generateTerrain classifies every cell from a freshly seeded noise field.
func generateTerrain(g *Grid, rng *rand.Rand, cfg Config) {
	field := cfg.Noise(rng.Int63(), cfg.TerrainScale)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Cells[y*g.Width+x] = classify(field.At(x, y), cfg.PlainThreshold)
		}
	}
}

// placeResources overlays sparse Energy and Mineral clusters on plain cells.
// Noise concentrates eligible regions; the Bernoulli gate thins them.
// Obstacles and the base are never overwritten.
func placeResources(g *Grid, rng *rand.Rand, cfg Config) {
	field := cfg.Noise(rng.Int63(), cfg.ResourceScale)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			if g.Cells[i] != Plain {
				continue
			}
			n := field.At(x, y)
			if n > cfg.EnergyThreshold && rng.Float64() < cfg.ResourceChance {
				g.Cells[i] = Energy
			} else if n > cfg.MineralThreshold && rng.Float64() < cfg.ResourceChance {
				g.Cells[i] = Mineral
			}
		}
	}
}
