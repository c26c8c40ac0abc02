package game

import (
	"testing"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/Garsondee/Rover-Sense/internal/world"
)

func TestStepSpeed(t *testing.T) {
	cases := []struct {
		cur  float64
		dir  int
		want float64
	}{
		{1, +1, 2},
		{1, -1, 0.5},
		{0, -1, 0},
		{8, +1, 8},
		{0, +1, 0.5},
	}
	for _, tc := range cases {
		if got := stepSpeed(tc.cur, tc.dir); got != tc.want {
			t.Fatalf("stepSpeed(%v,%d)=%v, want %v", tc.cur, tc.dir, got, tc.want)
		}
	}
}

func TestCellColourDistinct(t *testing.T) {
	seen := map[[3]uint8]world.Cell{}
	for _, c := range []world.Cell{world.Plain, world.Obstacle, world.Energy, world.Mineral, world.Base} {
		col := cellColour(c)
		key := [3]uint8{col.R, col.G, col.B}
		if prev, ok := seen[key]; ok {
			t.Fatalf("%s and %s share colour %v", prev, c, key)
		}
		seen[key] = c
	}
}

func TestRoverColourByRole(t *testing.T) {
	if roverColour(rover.Explorer|rover.Miner) == roverColour(rover.None) {
		t.Fatal("miners and walkers should be distinguishable")
	}
	if roverColour(rover.Scientist) == roverColour(rover.Explorer) {
		t.Fatal("scientists and explorers should be distinguishable")
	}
}

func TestCategoryColourFallback(t *testing.T) {
	if categoryColour("move") != categoryColour("unknown") {
		t.Fatal("uncoloured categories should share the fallback")
	}
	if categoryColour("mine") == categoryColour("move") {
		t.Fatal("mine events should stand out")
	}
}
