package rover

import (
	"math/rand"

	"github.com/Garsondee/Rover-Sense/internal/world"
)

// orthogonal lists the four legal step directions: up, down, left, right.
var orthogonal = [4]world.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// LegalMoves returns the in-bounds, walkable orthogonal neighbours of p.
func LegalMoves(g *world.Grid, p world.Point) []world.Point {
	moves := make([]world.Point, 0, len(orthogonal))
	for _, d := range orthogonal {
		nx, ny := p.X+d.X, p.Y+d.Y
		if !g.InBounds(nx, ny) || !g.IsWalkable(nx, ny) {
			continue
		}
		moves = append(moves, world.Point{X: nx, Y: ny})
	}
	return moves
}

// RandomWalk steps the rover to a uniformly chosen legal neighbour. A rover
// with no legal move stays put; that is not an error.
func RandomWalk(a *Agent, g *world.Grid, rng *rand.Rand) bool {
	moves := LegalMoves(g, a.Pos)
	if len(moves) == 0 {
		return false
	}
	a.Pos = moves[rng.Intn(len(moves))]
	return true
}
