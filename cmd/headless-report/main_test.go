package main

import (
	"testing"

	"github.com/Garsondee/Rover-Sense/internal/rover"
)

func defaultOptions() options {
	return options{
		width:  20,
		height: 20,
		ticks:  5,
		seed:   42,
		rovers: "explorer+miner,scientist,none",
		energy: 100,
		noise:  "perlin",
		emoji:  "auto",
	}
}

func TestGlyphSet(t *testing.T) {
	cases := []struct {
		mode     string
		terminal bool
		want     rover.GlyphSet
	}{
		{"auto", true, rover.GlyphsEmoji},
		{"auto", false, rover.GlyphsASCII},
		{"ON", false, rover.GlyphsEmoji},
		{"off", true, rover.GlyphsASCII},
	}
	for _, tc := range cases {
		got, err := glyphSet(tc.mode, tc.terminal)
		if err != nil {
			t.Fatalf("glyphSet(%q): %v", tc.mode, err)
		}
		if got != tc.want {
			t.Fatalf("glyphSet(%q,%t)=%d, want %d", tc.mode, tc.terminal, got, tc.want)
		}
	}
	if _, err := glyphSet("sometimes", true); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestBuildOptions_RejectsBadInput(t *testing.T) {
	o := defaultOptions()
	o.width = 0
	if _, err := buildOptions(o); err == nil {
		t.Fatal("zero width should be rejected")
	}
	o = defaultOptions()
	o.rovers = "explorer,pilot"
	if _, err := buildOptions(o); err == nil {
		t.Fatal("unknown role should be rejected")
	}
	o = defaultOptions()
	o.noise = "simplex"
	if _, err := buildOptions(o); err == nil {
		t.Fatal("unknown noise should be rejected")
	}
}

func TestBuildOptions_BaseOriginRun(t *testing.T) {
	o := defaultOptions()
	o.baseOrigin = true
	o.noise = "value"
	opts, err := buildOptions(o)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := rover.NewSim(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if b := sim.Grid.Base(); b.X != 0 || b.Y != 0 {
		t.Fatalf("base at (%d,%d), want origin", b.X, b.Y)
	}
	if sim.Roster.Len() != 3 {
		t.Fatalf("expected 3 rovers, got %d", sim.Roster.Len())
	}
	for _, a := range sim.Roster.Agents() {
		if a.Energy != 100 {
			t.Fatalf("%s starts with %d energy, want 100", a.Label, a.Energy)
		}
	}
	sim.RunTicks(o.ticks)
	if sim.CurrentTick() != o.ticks {
		t.Fatalf("tick %d, want %d", sim.CurrentTick(), o.ticks)
	}
}

func TestFirstTick(t *testing.T) {
	entries := []rover.SimLogEntry{
		{Tick: 2, Category: "explore", Key: "found_mineral"},
		{Tick: 3, Category: "mine", Key: "extracted"},
		{Tick: 7, Category: "mine", Key: "extracted"},
	}
	if got := firstTick(entries, "mine", "extracted"); got != 3 {
		t.Fatalf("firstTick=%d, want 3", got)
	}
	if got := firstTick(entries, "science", "harvested"); got != -1 {
		t.Fatalf("firstTick=%d for missing event, want -1", got)
	}
}

func TestMedianAndPercent(t *testing.T) {
	if got := median([]int{9, 1, 5}); got != 5 {
		t.Fatalf("median=%d, want 5", got)
	}
	if got := median(nil); got != -1 {
		t.Fatalf("median of nothing=%d, want -1", got)
	}
	if got := percent(1, 4); got != "25.0%" {
		t.Fatalf("percent=%q, want 25.0%%", got)
	}
	if got := percent(3, 0); got != "n/a" {
		t.Fatalf("percent with zero total=%q, want n/a", got)
	}
}

func TestRunOnce_CountsMatchSummary(t *testing.T) {
	o := defaultOptions()
	o.ticks = 30
	rs, err := runOnce(1, o)
	if err != nil {
		t.Fatal(err)
	}
	if rs.seed != o.seed || rs.runIndex != 1 {
		t.Fatalf("run identity %d/%d, want 1/%d", rs.runIndex, rs.seed, o.seed)
	}
	if rs.mined > rs.minerals {
		t.Fatalf("mined %d of only %d minerals", rs.mined, rs.minerals)
	}
	if rs.harvested > rs.energy {
		t.Fatalf("harvested %d of only %d energy deposits", rs.harvested, rs.energy)
	}
	if (rs.mined == 0) != (rs.firstMineTick == -1) {
		t.Fatalf("mined=%d but first_mine=%d", rs.mined, rs.firstMineTick)
	}
	if rs.exhausted != 0 {
		t.Fatalf("free actions should never exhaust, got %d", rs.exhausted)
	}
}
