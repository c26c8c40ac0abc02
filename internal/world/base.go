package world

import "math/rand"

// PlaceBase sites the science base on an already generated grid, replacing
// any existing base. Used by scripted scenarios built from NewBlank.
func (g *Grid) PlaceBase(rng *rand.Rand, opts ...Option) error {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if g.hasBase {
		g.Cells[g.base.Y*g.Width+g.base.X] = Plain
		g.hasBase = false
	}
	return placeBase(g, rng, cfg.withDefaults())
}

// BaseDraws returns how many random draws the last base placement consumed.
// Zero means the site came from the exhaustive scan or the origin mode.
func (g *Grid) BaseDraws() int {
	return g.baseDraws
}

// placeBase finds a Plain cell whose in-bounds neighbourhood is all Plain.
// Random draws are capped; after that a row-major scan either finds a site
// or proves none exists.
func placeBase(g *Grid, rng *rand.Rand, cfg Config) error {
	g.baseDraws = 0
	if cfg.BaseMode == BaseOrigin {
		clearAround(g, Point{})
		g.markBase(Point{})
		return nil
	}

	attempts := cfg.BaseAttempts
	if attempts <= 0 {
		attempts = 4 * g.Width * g.Height
	}
	for i := 1; i <= attempts; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if g.IsPure(x, y, Plain) {
			g.baseDraws = i
			g.markBase(Point{X: x, Y: y})
			return nil
		}
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsPure(x, y, Plain) {
				g.markBase(Point{X: x, Y: y})
				return nil
			}
		}
	}
	return ErrNoBaseSite
}

// clearAround forces p and its in-bounds neighbours to Plain.
func clearAround(g *Grid, p Point) {
	g.Cells[g.index(p.X, p.Y)] = Plain
	for _, d := range neighbourOffsets {
		nx, ny := p.X+d.X, p.Y+d.Y
		if g.InBounds(nx, ny) {
			g.Cells[ny*g.Width+nx] = Plain
		}
	}
}
