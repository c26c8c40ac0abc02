package rover

import (
	"strings"

	"github.com/Garsondee/Rover-Sense/internal/world"
)

// GlyphSet selects how Render draws cells.
type GlyphSet uint8

const (
	GlyphsASCII GlyphSet = iota // one byte per cell
	GlyphsEmoji                 // two columns per cell, for capable terminals
)

const (
	roverASCII = 'R'
	roverEmoji = "🤖"
)

// Render draws the grid with rovers overlaid, one row per line.
func Render(g *world.Grid, agents []*Agent, glyphs GlyphSet) string {
	occupied := make(map[world.Point]bool, len(agents))
	for _, a := range agents {
		occupied[a.Pos] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Point{X: x, Y: y}
			c := g.At(x, y)
			switch {
			case glyphs == GlyphsEmoji && occupied[p]:
				sb.WriteString(roverEmoji)
			case glyphs == GlyphsEmoji:
				sb.WriteString(c.Emoji())
			case occupied[p]:
				sb.WriteRune(roverASCII)
			default:
				sb.WriteRune(c.ASCII())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
