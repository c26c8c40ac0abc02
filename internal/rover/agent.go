package rover

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Rover-Sense/internal/world"
	"github.com/google/uuid"
)

// ErrDuplicateAgent is returned when a rover is added to a roster twice.
var ErrDuplicateAgent = errors.New("duplicate agent")

// Agent is one rover on the grid.
type Agent struct {
	ID     uuid.UUID
	Label  string // short display name, e.g. "R0"
	Pos    world.Point
	Energy int // non-negative
	Caps   Capability

	Mined     int // minerals extracted
	Collected int // energy deposits harvested
}

// NewAgent creates a rover at (x, y) with a fresh identity.
func NewAgent(x, y, energy int, caps Capability) *Agent {
	if energy < 0 {
		energy = 0
	}
	return &Agent{
		ID:     uuid.New(),
		Pos:    world.Point{X: x, Y: y},
		Energy: energy,
		Caps:   caps,
	}
}

func (a *Agent) String() string {
	return fmt.Sprintf("%s[%s](%d,%d) e=%d", a.Label, a.Caps, a.Pos.X, a.Pos.Y, a.Energy)
}

// Roster is the simulation-wide, insertion-ordered agent list. Turn
// processing follows roster order.
type Roster struct {
	agents []*Agent
	ids    map[uuid.UUID]int
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{ids: make(map[uuid.UUID]int)}
}

// Add appends a rover and returns its index handle. Rovers without a label
// are named after their handle.
func (r *Roster) Add(a *Agent) (int, error) {
	if _, ok := r.ids[a.ID]; ok {
		return -1, fmt.Errorf("agent %s: %w", a.ID, ErrDuplicateAgent)
	}
	idx := len(r.agents)
	if a.Label == "" {
		a.Label = fmt.Sprintf("R%d", idx)
	}
	r.agents = append(r.agents, a)
	r.ids[a.ID] = idx
	return idx, nil
}

// Len returns the number of rovers.
func (r *Roster) Len() int { return len(r.agents) }

// At returns the rover behind a handle.
func (r *Roster) At(i int) *Agent { return r.agents[i] }

// Agents returns the rovers in processing order. The slice is shared.
func (r *Roster) Agents() []*Agent { return r.agents }

// Lookup finds a rover by identity.
func (r *Roster) Lookup(id uuid.UUID) (*Agent, bool) {
	i, ok := r.ids[id]
	if !ok {
		return nil, false
	}
	return r.agents[i], true
}
