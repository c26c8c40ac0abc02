package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth   = 340
	logLineHeight   = 14
	minWindowHeight = 360
)

// LogPanel renders the tail of a SimLog on the right side of the window.
type LogPanel struct {
	log *rover.SimLog
}

// NewLogPanel creates a panel reading from log.
func NewLogPanel(log *rover.SimLog) *LogPanel {
	return &LogPanel{log: log}
}

// categoryColour returns the indicator dot colour for an event category.
func categoryColour(category string) color.RGBA {
	switch category {
	case "mine":
		return color.RGBA{R: 70, G: 150, B: 190, A: 255}
	case "science":
		return color.RGBA{R: 230, G: 200, B: 40, A: 255}
	case "explore":
		return color.RGBA{R: 240, G: 200, B: 120, A: 255}
	case "energy":
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}
	case "world":
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
}

// Draw renders the panel at panelX spanning panelH pixels.
func (lp *LogPanel) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 10, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 80, G: 60, B: 50, A: 255}, false)

	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 30, G: 22, B: 18, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ROVER LOG", panelX+8, 0)

	maxVisible := (panelH - 24) / logLineHeight
	entries := lp.log.Tail(maxVisible)
	recent := 3 // how many latest entries to highlight

	y := 20
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.DrawFilledRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 40, G: 30, B: 26, A: 160}, false)
		}
		vector.DrawFilledRect(screen, float32(panelX+5), float32(y+4), 3, 5, categoryColour(e.Category), false)
		line := fmt.Sprintf("%4d [%s] %s %s", e.Tick, e.Agent, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
