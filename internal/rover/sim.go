package rover

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/Rover-Sense/internal/world"
)

// Sim bundles a generated world, its rovers and a scheduler. Both front-ends
// and the scenario tests drive the simulation through it.
type Sim struct {
	Width     int
	Height    int
	Grid      *world.Grid
	Roster    *Roster
	Scheduler *Scheduler
	SimLog    *SimLog

	rng       *rand.Rand
	worldOpts []world.Option
	schedCfg  SchedulerConfig
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // grid size, seed, world config, verbose; applied first
	simOptAgent                      // add rovers once the world exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim) error
}

// WithGridSize sets the world dimensions.
func WithGridSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.Width = w
		s.Height = h
		return nil
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation only
		return nil
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.SimLog = NewSimLog(v)
		return nil
	}}
}

// WithWorldOptions forwards generation options to world.New.
func WithWorldOptions(opts ...world.Option) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.worldOpts = append(s.worldOpts, opts...)
		return nil
	}}
}

// WithGrid skips generation and runs on a prepared grid.
func WithGrid(g *world.Grid) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.Grid = g
		s.Width = g.Width
		s.Height = g.Height
		return nil
	}}
}

// WithCosts sets per-action energy costs.
func WithCosts(c Costs) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.schedCfg.Costs = c
		return nil
	}}
}

// WithBehaviors swaps entries of the scheduler's dispatch table.
func WithBehaviors(b Behaviors) SimOption {
	return SimOption{simOptInfra, func(s *Sim) error {
		s.schedCfg.Behaviors = b
		return nil
	}}
}

// WithAgent adds a rover at (x, y).
func WithAgent(x, y, energy int, caps Capability) SimOption {
	return SimOption{simOptAgent, func(s *Sim) error {
		if !s.Grid.InBounds(x, y) {
			return fmt.Errorf("agent at (%d,%d): %w", x, y,
				&world.BoundsError{X: x, Y: y, Width: s.Width, Height: s.Height})
		}
		return s.AddAgent(NewAgent(x, y, energy, caps))
	}}
}

// WithAgentAtBase adds a rover starting on the science base.
func WithAgentAtBase(energy int, caps Capability) SimOption {
	return SimOption{simOptAgent, func(s *Sim) error {
		b := s.Grid.Base()
		return s.AddAgent(NewAgent(b.X, b.Y, energy, caps))
	}}
}

// NewSim constructs a Sim from the given options in ordered passes:
//  1. Infrastructure (size, seed, world options, verbose)
//  2. World generation, unless WithGrid supplied one
//  3. Rovers
func NewSim(opts ...SimOption) (*Sim, error) {
	s := &Sim{
		Width:  70,
		Height: 70,
		Roster: NewRoster(),
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- simulation default
	}
	for _, o := range opts {
		if o.kind != simOptInfra {
			continue
		}
		if err := o.fn(s); err != nil {
			return nil, err
		}
	}
	if s.Grid == nil {
		g, err := world.New(s.Width, s.Height, s.rng, s.worldOpts...)
		if err != nil {
			return nil, err
		}
		s.Grid = g
		b := g.Base()
		s.SimLog.Add(0, "--", "world", "generated",
			fmt.Sprintf("%dx%d plain=%d obstacle=%d mineral=%d energy=%d",
				g.Width, g.Height, g.Count(world.Plain), g.Count(world.Obstacle),
				g.Count(world.Mineral), g.Count(world.Energy)), 0)
		s.SimLog.Add(0, "--", "world", "base",
			fmt.Sprintf("(%d,%d) after %d draws", b.X, b.Y, g.BaseDraws()), float64(g.BaseDraws()))
	}
	s.Scheduler = NewScheduler(s.rng, s.SimLog, s.schedCfg)
	for _, o := range opts {
		if o.kind != simOptAgent {
			continue
		}
		if err := o.fn(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddAgent appends a rover to the roster; it acts from the next tick.
func (s *Sim) AddAgent(a *Agent) error {
	if _, err := s.Roster.Add(a); err != nil {
		return err
	}
	s.SimLog.Add(s.Scheduler.Tick(), a.Label, "world", "agent_added",
		fmt.Sprintf("%s at %s", a.Caps, pointLabel(a.Pos)), 0)
	return nil
}

// RunTicks advances the simulation n ticks.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Scheduler.RunTurn(s.Roster, s.Grid)
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.Scheduler.RunTurn(s.Roster, s.Grid)
		if predicate(s) {
			return s.Scheduler.Tick()
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (s *Sim) CurrentTick() int {
	return s.Scheduler.Tick()
}

// Render draws the current grid with rovers overlaid.
func (s *Sim) Render(glyphs GlyphSet) string {
	return Render(s.Grid, s.Roster.Agents(), glyphs)
}

// SimSnapshot captures a lightweight state summary.
type SimSnapshot struct {
	Tick   int
	Agents []AgentSnapshot
}

// AgentSnapshot is a lightweight copy of a rover's state at a tick.
type AgentSnapshot struct {
	Label     string
	Caps      Capability
	Pos       world.Point
	Energy    int
	Mined     int
	Collected int
}

// Snapshot returns the current state of all rovers.
func (s *Sim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: s.Scheduler.Tick()}
	for _, a := range s.Roster.Agents() {
		snap.Agents = append(snap.Agents, AgentSnapshot{
			Label:     a.Label,
			Caps:      a.Caps,
			Pos:       a.Pos,
			Energy:    a.Energy,
			Mined:     a.Mined,
			Collected: a.Collected,
		})
	}
	return snap
}
