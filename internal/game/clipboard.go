package game

import (
	"fmt"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/atotto/clipboard"
)

// copyMap puts the ASCII rendering on the system clipboard and returns a
// status line for the HUD.
func copyMap(sim *rover.Sim) string {
	if err := clipboard.WriteAll(sim.Render(rover.GlyphsASCII)); err != nil {
		return fmt.Sprintf("clipboard: %v", err)
	}
	return fmt.Sprintf("map copied (turn %d)", sim.CurrentTick())
}
