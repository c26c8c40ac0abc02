package world

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// neighbourOffsets lists the 8 surrounding cells.
var neighbourOffsets = [8]Point{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Grid is the authoritative per-cell terrain representation.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell // row-major: index = y*Width + x

	base      Point
	hasBase   bool
	baseDraws int
}

// NewBlank creates an all-plain grid with no base. New is the generating
// constructor; NewBlank exists for scripted scenarios.
func NewBlank(width, height int) *Grid {
	cells := make([]Cell, width*height)
	// Plain is the zero value.
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds returns true if (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index panics with a *BoundsError for out-of-range coordinates.
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: g.Width, Height: g.Height})
	}
	return y*g.Width + x
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.Cells[g.index(x, y)]
}

// Set overwrites the cell at (x, y). Writing Base moves the base: the old
// base cell reverts to Plain so the grid never holds two.
func (g *Grid) Set(x, y int, c Cell) {
	i := g.index(x, y)
	if c == Base {
		if g.hasBase {
			g.Cells[g.base.Y*g.Width+g.base.X] = Plain
		}
		g.markBase(Point{X: x, Y: y})
		return
	}
	if g.Cells[i] == Base {
		g.hasBase = false
	}
	g.Cells[i] = c
}

// IsWalkable returns true if a rover may stand on (x, y).
func (g *Grid) IsWalkable(x, y int) bool {
	return g.At(x, y) == Plain
}

// Base returns the recorded base coordinate.
func (g *Grid) Base() Point {
	return g.base
}

// HasBase reports whether a base has been placed.
func (g *Grid) HasBase() bool {
	return g.hasBase
}

// IsPure reports whether (x, y) and every in-bounds 8-neighbour hold c.
// Neighbours beyond the edge satisfy the constraint, so edge cells qualify.
func (g *Grid) IsPure(x, y int, c Cell) bool {
	if g.At(x, y) != c {
		return false
	}
	for _, d := range neighbourOffsets {
		nx, ny := x+d.X, y+d.Y
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.Cells[ny*g.Width+nx] != c {
			return false
		}
	}
	return true
}

// Clamp pulls (x, y) into the grid extent.
func (g *Grid) Clamp(x, y int) Point {
	return Point{X: clampInt(x, 0, g.Width-1), Y: clampInt(y, 0, g.Height-1)}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.Cells {
		if v == c {
			n++
		}
	}
	return n
}

// markBase stamps the base and records its coordinate.
func (g *Grid) markBase(p Point) {
	g.Cells[g.index(p.X, p.Y)] = Base
	g.base = p
	g.hasBase = true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
