package rover

import (
	"fmt"
	"strings"
)

// Capability is a bitset of optional rover roles.
type Capability uint8

const (
	Explorer  Capability = 1 << iota // scans for minerals, drifts right
	Miner                            // extracts minerals handed over by Explorer
	Scientist                        // scans for and harvests energy
)

// None is the empty capability set; such rovers random-walk.
const None Capability = 0

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{Explorer, "explorer"},
	{Miner, "miner"},
	{Scientist, "scientist"},
}

// Has reports whether every bit of c is present.
func (cs Capability) Has(c Capability) bool {
	return cs&c == c
}

// String renders the set as "explorer+miner", or "none".
func (cs Capability) String() string {
	if cs == None {
		return "none"
	}
	var parts []string
	for _, cn := range capabilityNames {
		if cs.Has(cn.c) {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseCapability is the inverse of String.
func ParseCapability(s string) (Capability, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return None, nil
	}
	var cs Capability
	for _, part := range strings.Split(s, "+") {
		found := false
		for _, cn := range capabilityNames {
			if part == cn.name {
				cs |= cn.c
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("unknown capability %q", part)
		}
	}
	return cs, nil
}

// ParseRoster parses a comma-separated list of capability sets, one per rover.
func ParseRoster(s string) ([]Capability, error) {
	var out []Capability
	for _, item := range strings.Split(s, ",") {
		cs, err := ParseCapability(item)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}
