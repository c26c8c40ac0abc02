package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/Garsondee/Rover-Sense/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the map.
const borderWidth = 16

// framesPerTurn is how many 60 Hz frames one turn lasts at 1x speed.
const framesPerTurn = 15

// simSpeeds are the selectable turn-rate multipliers; 0 is paused.
var simSpeeds = []float64{0, 0.5, 1, 2, 4, 8}

// Config describes the world the window simulates.
type Config struct {
	Width      int
	Height     int
	CellPx     int   // pixels per grid cell
	Seed       int64 // 0 = time-based
	Rovers     []rover.Capability
	BaseOrigin bool
}

// DefaultConfig mirrors the console runner: a 70×70 grid and one rover of
// each kind.
func DefaultConfig() Config {
	return Config{
		Width:  70,
		Height: 70,
		CellPx: 10,
		Rovers: []rover.Capability{rover.Explorer | rover.Miner, rover.Scientist, rover.None},
	}
}

type Game struct {
	cfg     Config
	sim     *rover.Sim
	seed    int64
	width   int
	height  int
	mapW    int
	mapH    int
	logPane *LogPanel

	showHUD  bool
	prevKeys map[ebiten.Key]bool
	status   string // transient HUD message, e.g. clipboard result

	// Simulation speed control.
	simSpeed  float64
	tickAccum float64
}

// New generates the world and lays out the window around it.
func New(cfg Config) (*Game, error) {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.CellPx <= 0 {
		cfg.CellPx = def.CellPx
	}
	if cfg.Rovers == nil {
		cfg.Rovers = def.Rovers
	}
	g := &Game{
		cfg:      cfg,
		mapW:     cfg.Width * cfg.CellPx,
		mapH:     cfg.Height * cfg.CellPx,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		simSpeed: 1,
	}
	g.width = borderWidth + g.mapW + borderWidth + logPanelWidth
	g.height = borderWidth + g.mapH + borderWidth
	if g.height < minWindowHeight {
		g.height = minWindowHeight
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := g.regenerate(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// regenerate builds a fresh world and roster from seed.
func (g *Game) regenerate(seed int64) error {
	opts := []rover.SimOption{
		rover.WithGridSize(g.cfg.Width, g.cfg.Height),
		rover.WithSeed(seed),
	}
	if g.cfg.BaseOrigin {
		opts = append(opts, rover.WithWorldOptions(world.WithBaseMode(world.BaseOrigin)))
	}
	for _, caps := range g.cfg.Rovers {
		opts = append(opts, rover.WithAgentAtBase(0, caps))
	}
	sim, err := rover.NewSim(opts...)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	g.sim = sim
	g.seed = seed
	g.logPane = NewLogPanel(sim.SimLog)
	g.tickAccum = 0
	return nil
}

func (g *Game) Update() error {
	g.handleInput()

	if g.simSpeed <= 0 {
		return nil
	}
	g.tickAccum += g.simSpeed / framesPerTurn
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.sim.RunTicks(1)
	}
	return nil
}

// keyPressed reports a rising edge for k and records it in current.
func (g *Game) keyPressed(current map[ebiten.Key]bool, k ebiten.Key) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !g.prevKeys[k]
}

// handleInput processes keypresses (edge-triggered).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	if g.keyPressed(currentKeys, ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster, Space=single turn.
	if g.keyPressed(currentKeys, ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if g.keyPressed(currentKeys, ebiten.KeyComma) {
		g.simSpeed = stepSpeed(g.simSpeed, -1)
	}
	if g.keyPressed(currentKeys, ebiten.KeyPeriod) {
		g.simSpeed = stepSpeed(g.simSpeed, +1)
	}
	if g.keyPressed(currentKeys, ebiten.KeySpace) && g.simSpeed == 0 {
		g.sim.RunTicks(1)
	}

	// C: copy the ASCII map.
	if g.keyPressed(currentKeys, ebiten.KeyC) {
		g.status = copyMap(g.sim)
	}

	// R: new world from a fresh seed.
	if g.keyPressed(currentKeys, ebiten.KeyR) {
		next := rand.New(rand.NewSource(g.seed)).Int63() // #nosec G404 -- game only
		if err := g.regenerate(next); err != nil {
			g.status = err.Error()
		} else {
			g.status = fmt.Sprintf("new world, seed %d", next)
		}
	}

	g.prevKeys = currentKeys
}

// stepSpeed moves one notch through simSpeeds in direction dir.
func stepSpeed(cur float64, dir int) float64 {
	idx := 0
	for i, s := range simSpeeds {
		if s <= cur {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(simSpeeds) {
		idx = len(simSpeeds) - 1
	}
	return simSpeeds[idx]
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Window background: very dark, outside the map.
	screen.Fill(color.RGBA{R: 14, G: 12, B: 12, A: 255})

	g.drawGrid(screen, borderWidth, borderWidth)
	g.drawRovers(screen, borderWidth, borderWidth)

	ox := float32(borderWidth)
	oy := float32(borderWidth)
	vector.StrokeRect(screen, ox-1, oy-1, float32(g.mapW)+2, float32(g.mapH)+2, 2.0,
		color.RGBA{R: 110, G: 80, B: 60, A: 255}, false)

	logX := borderWidth + g.mapW + borderWidth
	g.logPane.Draw(screen, logX, g.height)

	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, borderWidth+4, borderWidth+4)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size returns the window dimensions in pixels.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
