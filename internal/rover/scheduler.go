package rover

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/Rover-Sense/internal/world"
)

// defaultEnergyYield is the energy a scientist gains per harvested deposit.
const defaultEnergyYield = 10

// Costs is the energy deducted per action. All zero by default.
type Costs struct {
	Move    int
	Explore int
	Mine    int
	Collect int
}

// SchedulerConfig holds tuneable scheduler parameters.
type SchedulerConfig struct {
	Behaviors   Behaviors // nil entries use DefaultBehaviors
	Costs       Costs
	EnergyYield int // 0 = defaultEnergyYield
}

// Scheduler runs one action per rover per tick, in roster order. It is the
// only writer of the grid once generation has finished.
type Scheduler struct {
	rng         *rand.Rand
	log         *SimLog
	behaviors   Behaviors
	costs       Costs
	energyYield int
	tick        int
}

// NewScheduler creates a scheduler drawing randomness from rng and writing
// events to log.
func NewScheduler(rng *rand.Rand, log *SimLog, cfg SchedulerConfig) *Scheduler {
	if log == nil {
		log = NewSimLog(false)
	}
	if cfg.EnergyYield <= 0 {
		cfg.EnergyYield = defaultEnergyYield
	}
	return &Scheduler{
		rng:         rng,
		log:         log,
		behaviors:   cfg.Behaviors.withDefaults(),
		costs:       cfg.Costs,
		energyYield: cfg.EnergyYield,
	}
}

// Tick returns the number of completed turns.
func (s *Scheduler) Tick() int {
	return s.tick
}

// RunTurn processes every rover exactly once, in roster order.
func (s *Scheduler) RunTurn(roster *Roster, g *world.Grid) {
	s.tick++
	for _, a := range roster.Agents() {
		s.act(a, g)
		s.log.AddVerbose(s.tick, a.Label, "move", "position",
			fmt.Sprintf("(%d,%d)", a.Pos.X, a.Pos.Y), 0)
	}
}

// act dispatches a rover's capabilities in the fixed order
// Explorer → Miner → Scientist. A miner only works targets its own explorer
// found; rovers that can neither explore nor collect wander instead.
func (s *Scheduler) act(a *Agent, g *world.Grid) {
	if !a.Caps.Has(Explorer) && !a.Caps.Has(Scientist) {
		s.wander(a, g)
		return
	}
	if a.Caps.Has(Explorer) {
		s.explore(a, g)
	}
	if a.Caps.Has(Scientist) {
		s.collect(a, g)
	}
}

func (s *Scheduler) explore(a *Agent, g *world.Grid) {
	if !s.afford(a, s.costs.Explore, "explore") {
		return
	}
	target, found := s.behaviors.Explore(a, g)
	s.charge(a, s.costs.Explore)
	if !found {
		s.log.Add(s.tick, a.Label, "explore", "advance", pointLabel(a.Pos), 0)
		return
	}
	s.log.Add(s.tick, a.Label, "explore", "found_mineral", pointLabel(target), 0)

	if !a.Caps.Has(Miner) || !s.afford(a, s.costs.Mine, "mine") {
		return
	}
	if s.behaviors.Mine(a, g, target) {
		a.Mined++
		s.log.Add(s.tick, a.Label, "mine", "extracted", pointLabel(target), float64(a.Mined))
	} else {
		s.log.Add(s.tick, a.Label, "mine", "empty", pointLabel(target), 0)
	}
	s.charge(a, s.costs.Mine)
}

func (s *Scheduler) collect(a *Agent, g *world.Grid) {
	if !s.afford(a, s.costs.Collect, "collect") {
		return
	}
	target, found := s.behaviors.Collect(a, g)
	s.charge(a, s.costs.Collect)
	if !found {
		s.log.Add(s.tick, a.Label, "science", "advance", pointLabel(a.Pos), 0)
		return
	}
	s.log.Add(s.tick, a.Label, "science", "found_energy", pointLabel(target), 0)
	if g.At(target.X, target.Y) != world.Energy {
		return
	}
	g.Set(target.X, target.Y, world.Plain)
	a.Energy += s.energyYield
	a.Collected++
	s.log.Add(s.tick, a.Label, "science", "harvested", pointLabel(target), float64(a.Energy))
}

func (s *Scheduler) wander(a *Agent, g *world.Grid) {
	if !s.afford(a, s.costs.Move, "move") {
		return
	}
	from := a.Pos
	if !s.behaviors.Move(a, g, s.rng) {
		s.log.Add(s.tick, a.Label, "move", "blocked", pointLabel(from), 0)
		return
	}
	s.charge(a, s.costs.Move)
	s.log.AddVerbose(s.tick, a.Label, "move", "step",
		fmt.Sprintf("%s → %s", pointLabel(from), pointLabel(a.Pos)), 0)
}

// afford reports whether the rover can pay for an action. Free actions are
// always affordable; a drained rover idles.
func (s *Scheduler) afford(a *Agent, cost int, action string) bool {
	if cost <= 0 || a.Energy > 0 {
		return true
	}
	s.log.Add(s.tick, a.Label, "energy", "exhausted", action, 0)
	return false
}

// charge deducts cost, flooring energy at zero.
func (s *Scheduler) charge(a *Agent, cost int) {
	if cost <= 0 {
		return
	}
	a.Energy -= cost
	if a.Energy < 0 {
		a.Energy = 0
	}
}

func pointLabel(p world.Point) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
