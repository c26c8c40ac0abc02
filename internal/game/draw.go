package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/Garsondee/Rover-Sense/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap face used for the HUD legend.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudLineHeight = 14

// cellColour returns the fill colour for a cell kind.
func cellColour(c world.Cell) color.RGBA {
	r, g, b := c.Colour()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// roverColour tints a rover by its strongest role.
func roverColour(caps rover.Capability) color.RGBA {
	switch {
	case caps.Has(rover.Explorer | rover.Miner):
		return color.RGBA{R: 240, G: 120, B: 40, A: 255}
	case caps.Has(rover.Scientist):
		return color.RGBA{R: 120, G: 230, B: 120, A: 255}
	case caps.Has(rover.Explorer):
		return color.RGBA{R: 240, G: 200, B: 120, A: 255}
	case caps != rover.None:
		return color.RGBA{R: 200, G: 140, B: 240, A: 255}
	default:
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}
}

// drawGrid fills one square per cell.
func (g *Game) drawGrid(screen *ebiten.Image, offX, offY int) {
	grid := g.sim.Grid
	cs := float32(g.cfg.CellPx)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			px := float32(offX) + float32(x)*cs
			py := float32(offY) + float32(y)*cs
			c := grid.At(x, y)
			vector.DrawFilledRect(screen, px, py, cs, cs, cellColour(c), false)
			if c == world.Base {
				vector.StrokeRect(screen, px+1, py+1, cs-2, cs-2, 1.0,
					color.RGBA{R: 200, G: 40, B: 40, A: 255}, false)
			}
		}
	}
}

// drawRovers marks each rover with a dot in its role colour.
func (g *Game) drawRovers(screen *ebiten.Image, offX, offY int) {
	cs := float32(g.cfg.CellPx)
	r := cs * 0.4
	for _, a := range g.sim.Roster.Agents() {
		cx := float32(offX) + (float32(a.Pos.X)+0.5)*cs
		cy := float32(offY) + (float32(a.Pos.Y)+0.5)*cs
		vector.DrawFilledCircle(screen, cx, cy, r, roverColour(a.Caps), true)
		vector.StrokeCircle(screen, cx, cy, r, 1.0, color.RGBA{A: 255}, true)
	}
}

// hudLines builds the legend text.
func (g *Game) hudLines() []string {
	speedStr := fmt.Sprintf("%gx", g.simSpeed)
	if g.simSpeed == 0 {
		speedStr = "PAUSED"
	}
	grid := g.sim.Grid
	return []string{
		fmt.Sprintf("turn %d  seed %d  %s", g.sim.CurrentTick(), g.seed, speedStr),
		fmt.Sprintf("minerals %d  energy %d", grid.Count(world.Mineral), grid.Count(world.Energy)),
		"P=pause  ,/.=speed  Space=step",
		"C=copy map  R=new world  H=hud",
	}
}

// drawHUD renders the legend in the bottom-left corner of the map.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	const padX, padY = 6, 4

	maxW := 0.0
	for _, l := range lines {
		w, _ := text.Measure(l, hudFace, hudLineHeight)
		if w > maxW {
			maxW = w
		}
	}
	boxW := float32(maxW) + padX*2
	boxH := float32(len(lines)*hudLineHeight) + padY*2
	bx := float32(borderWidth + 4)
	by := float32(borderWidth+g.mapH) - boxH - 4

	vector.DrawFilledRect(screen, bx, by, boxW, boxH, color.RGBA{R: 10, G: 8, B: 6, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 120, G: 90, B: 60, A: 180}, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(bx)+padX, float64(by)+padY+float64(i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 230, G: 220, B: 200, A: 255})
		text.Draw(screen, line, hudFace, op)
	}
}
