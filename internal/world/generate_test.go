package world

import (
	"errors"
	"math/rand"
	"testing"
)

// checkBaseInvariant fails unless the grid holds exactly one base whose
// in-bounds neighbourhood contains no obstacle.
func checkBaseInvariant(t *testing.T, g *Grid) {
	t.Helper()
	if n := g.Count(Base); n != 1 {
		t.Fatalf("expected exactly one base, got %d", n)
	}
	b := g.Base()
	if g.At(b.X, b.Y) != Base {
		t.Fatalf("recorded base %v holds %s", b, g.At(b.X, b.Y))
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := b.X+dx, b.Y+dy
			if !g.InBounds(x, y) {
				continue
			}
			if g.At(x, y) == Obstacle {
				t.Fatalf("obstacle at (%d,%d) next to base %v", x, y, b)
			}
		}
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-3, 4}} {
		g, err := New(dims[0], dims[1], rng)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d,%d) err=%v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatal("no grid should be returned on error")
		}
	}
}

func TestNew_GeneratedGridsHoldBaseInvariant(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := New(40, 30, rng)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkBaseInvariant(t, g)
	}
}

func TestNew_ValueNoiseGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := New(60, 40, rng, WithNoise(NewValueField))
	if err != nil {
		t.Fatal(err)
	}
	checkBaseInvariant(t, g)
	if g.Count(Plain) == 0 || g.Count(Obstacle) == 0 {
		t.Fatalf("expected mixed terrain, got plain=%d obstacle=%d", g.Count(Plain), g.Count(Obstacle))
	}
}

func TestNew_DeterministicForSeed(t *testing.T) {
	a, err := New(30, 30, rand.New(rand.NewSource(77)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(30, 30, rand.New(rand.NewSource(77)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
	}
	if a.Base() != b.Base() {
		t.Fatalf("base differs: %v vs %v", a.Base(), b.Base())
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		noise float64
		want  Cell
	}{
		{-0.9, Plain},
		{0.0, Plain},
		{0.1999, Plain},
		{0.2, Obstacle},
		{0.75, Obstacle},
	}
	for _, tc := range cases {
		if got := classify(tc.noise, 0.2); got != tc.want {
			t.Fatalf("classify(%v)=%s, want %s", tc.noise, got, tc.want)
		}
	}
}

func TestNew_AllLowNoiseIsAllPlain(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g, err := New(5, 5, rng, WithNoise(ConstantNoise(-0.5)))
	if err != nil {
		t.Fatal(err)
	}
	if n := g.Count(Plain); n != 24 {
		t.Fatalf("expected 24 plain cells plus the base, got %d plain", n)
	}
	checkBaseInvariant(t, g)
}

func TestPlaceResources_OnlyOnPlain(t *testing.T) {
	g := NewBlank(6, 6)
	for x := 0; x < 6; x++ {
		g.Set(x, 2, Obstacle)
	}
	g.Set(5, 5, Base)

	cfg := DefaultConfig()
	cfg.Noise = ConstantNoise(0.9)
	cfg.ResourceChance = 1
	placeResources(g, rand.New(rand.NewSource(1)), cfg)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := g.At(x, y)
			switch {
			case y == 2:
				if got != Obstacle {
					t.Fatalf("obstacle at (%d,%d) became %s", x, y, got)
				}
			case x == 5 && y == 5:
				if got != Base {
					t.Fatalf("base became %s", got)
				}
			default:
				if got != Energy {
					t.Fatalf("plain cell (%d,%d) became %s, want energy", x, y, got)
				}
			}
		}
	}
}

func TestPlaceResources_MineralBand(t *testing.T) {
	g := NewBlank(4, 4)
	cfg := DefaultConfig()
	cfg.Noise = ConstantNoise(0.3) // above the mineral threshold, below energy
	cfg.ResourceChance = 1
	placeResources(g, rand.New(rand.NewSource(1)), cfg)
	if n := g.Count(Mineral); n != 16 {
		t.Fatalf("expected every cell mineral, got %d", n)
	}
}

func TestPlaceResources_BelowThresholdsPlacesNothing(t *testing.T) {
	g := NewBlank(4, 4)
	cfg := DefaultConfig()
	cfg.Noise = ConstantNoise(0.2)
	cfg.ResourceChance = 1
	placeResources(g, rand.New(rand.NewSource(1)), cfg)
	if n := g.Count(Plain); n != 16 {
		t.Fatalf("noise at the threshold is not above it; got %d plain", n)
	}
}

func TestPlaceResources_SparseWithDefaultChance(t *testing.T) {
	g := NewBlank(50, 50)
	cfg := DefaultConfig()
	cfg.Noise = ConstantNoise(0.9)
	placeResources(g, rand.New(rand.NewSource(42)), cfg)

	energy := g.Count(Energy)
	mineral := g.Count(Mineral)
	t.Logf("energy=%d mineral=%d", energy, mineral)
	// 2500 cells at p=0.1 for energy, then p=0.1 of the remainder for mineral.
	if energy < 150 || energy > 350 {
		t.Fatalf("energy count %d outside the expected sparse band", energy)
	}
	if mineral < 120 || mineral > 330 {
		t.Fatalf("mineral count %d outside the expected sparse band", mineral)
	}
}
