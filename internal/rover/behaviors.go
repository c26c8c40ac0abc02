package rover

import (
	"math/rand"

	"github.com/Garsondee/Rover-Sense/internal/world"
)

// ExploreFunc scans around a rover for a mineral. When none is found it may
// move the rover and returns false.
type ExploreFunc func(a *Agent, g *world.Grid) (world.Point, bool)

// MineFunc works a target cell and reports whether a mineral was extracted.
type MineFunc func(a *Agent, g *world.Grid, target world.Point) bool

// CollectFunc scans around a rover for energy, with the same fallback
// contract as ExploreFunc.
type CollectFunc func(a *Agent, g *world.Grid) (world.Point, bool)

// MoveFunc is the fallback for rovers with nothing better to do. It reports
// whether the rover moved.
type MoveFunc func(a *Agent, g *world.Grid, rng *rand.Rand) bool

// Behaviors is the dispatch table the scheduler consults for each
// capability. Any entry can be swapped independently.
type Behaviors struct {
	Explore ExploreFunc
	Mine    MineFunc
	Collect CollectFunc
	Move    MoveFunc
}

// DefaultBehaviors returns the stock rover behaviours.
func DefaultBehaviors() Behaviors {
	return Behaviors{
		Explore: Explore,
		Mine:    Mine,
		Collect: CollectEnergy,
		Move:    RandomWalk,
	}
}

// withDefaults fills nil entries from DefaultBehaviors.
func (b Behaviors) withDefaults() Behaviors {
	def := DefaultBehaviors()
	if b.Explore == nil {
		b.Explore = def.Explore
	}
	if b.Mine == nil {
		b.Mine = def.Mine
	}
	if b.Collect == nil {
		b.Collect = def.Collect
	}
	if b.Move == nil {
		b.Move = def.Move
	}
	return b
}

// Explore looks for a Mineral in the rover's 3×3 neighbourhood.
func Explore(a *Agent, g *world.Grid) (world.Point, bool) {
	return scanOrAdvance(a, g, world.Mineral)
}

// CollectEnergy looks for Energy in the rover's 3×3 neighbourhood.
func CollectEnergy(a *Agent, g *world.Grid) (world.Point, bool) {
	return scanOrAdvance(a, g, world.Energy)
}

// Mine sends the rover to target, extracts a mineral if one is still there,
// and returns the rover to base. The rover ends at base either way.
func Mine(a *Agent, g *world.Grid, target world.Point) bool {
	a.Pos = target
	extracted := false
	if g.At(target.X, target.Y) == world.Mineral {
		g.Set(target.X, target.Y, world.Plain)
		extracted = true
	}
	a.Pos = g.Base()
	return extracted
}

// scanOrAdvance returns the first cell of kind want in the 3×3 window around
// the rover. Window coordinates are clamped into the grid, so edge rovers
// rescan border cells rather than stepping off. With nothing found the rover
// advances one cell right unless already on the right edge.
func scanOrAdvance(a *Agent, g *world.Grid, want world.Cell) (world.Point, bool) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			p := g.Clamp(a.Pos.X+dx, a.Pos.Y+dy)
			if g.At(p.X, p.Y) == want {
				return p, true
			}
		}
	}
	if a.Pos.X+1 < g.Width {
		a.Pos.X++
	}
	return world.Point{}, false
}
