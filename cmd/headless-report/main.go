package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/Garsondee/Rover-Sense/internal/world"
	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

type options struct {
	width      int
	height     int
	ticks      int
	seed       int64
	runs       int
	seedStep   int64
	rovers     string
	energy     int
	moveCost   int
	noise      string
	baseOrigin bool
	verbose    bool
	emoji      string
	quiet      bool
	copyMap    bool
}

func main() {
	var o options
	flag.IntVar(&o.width, "width", 70, "grid width in cells")
	flag.IntVar(&o.height, "height", 70, "grid height in cells")
	flag.IntVar(&o.ticks, "ticks", 10, "turns to simulate")
	flag.Int64Var(&o.seed, "seed", 42, "world and movement RNG seed for run 1")
	flag.IntVar(&o.runs, "runs", 1, "number of simulation runs; more than one prints statistics only")
	flag.Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&o.rovers, "rovers", "explorer+miner,scientist,none", "comma-separated capability sets, one per rover")
	flag.IntVar(&o.energy, "energy", 100, "starting energy per rover")
	flag.IntVar(&o.moveCost, "move-cost", 0, "energy spent per random-walk step")
	flag.StringVar(&o.noise, "noise", "perlin", "terrain noise (perlin|value)")
	flag.BoolVar(&o.baseOrigin, "base-origin", false, "put the base at (0,0) instead of a random clear site")
	flag.BoolVar(&o.verbose, "verbose", false, "record per-turn positions in the event log")
	flag.StringVar(&o.emoji, "emoji", "auto", "emoji glyphs (auto|on|off)")
	flag.BoolVar(&o.quiet, "quiet", false, "only print the final map and summary")
	flag.BoolVar(&o.copyMap, "copy", false, "copy the final ASCII map to the clipboard")
	flag.Parse()

	if o.ticks < 0 {
		fmt.Println("error: -ticks must be >= 0")
		return
	}
	if o.runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	glyphs, err := glyphSet(o.emoji, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if _, err := buildOptions(o); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Rover Report ===\n")
	fmt.Printf("grid=%dx%d rovers=%q ticks=%d runs=%d seed=%d seed_step=%d\n\n",
		o.width, o.height, o.rovers, o.ticks, o.runs, o.seed, o.seedStep)

	if o.runs == 1 {
		runVerbose(o, glyphs)
		return
	}
	all := make([]runStats, 0, o.runs)
	for i := 0; i < o.runs; i++ {
		run := o
		run.seed = o.seed + int64(i)*o.seedStep
		rs, err := runOnce(i+1, run)
		if err != nil {
			fmt.Printf("--- Run %d (seed=%d) ---\nerror: %v\n\n", i+1, run.seed, err)
			continue
		}
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runVerbose runs one simulation, rendering the map after every turn and
// printing the full event log.
func runVerbose(o options, glyphs rover.GlyphSet) {
	opts, err := buildOptions(o)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	sim, err := rover.NewSim(opts...)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printWorld(sim.Grid)

	if !o.quiet {
		fmt.Println("Initial map:")
		fmt.Print(sim.Render(glyphs))
	}
	for turn := 1; turn <= o.ticks; turn++ {
		sim.RunTicks(1)
		if !o.quiet {
			fmt.Printf("\n--- %s turn ---\n", humanize.Ordinal(turn))
			fmt.Print(sim.Render(glyphs))
		}
	}
	if o.quiet {
		fmt.Print(sim.Render(glyphs))
	}

	fmt.Println()
	fmt.Print(sim.SimLog.Format())
	fmt.Println()
	fmt.Print(sim.SimLog.Summary(sim.CurrentTick(), sim.Roster.Agents(), sim.Grid))

	if o.copyMap {
		if err := clipboard.WriteAll(sim.Render(rover.GlyphsASCII)); err != nil {
			fmt.Printf("error: clipboard: %v\n", err)
		}
	}
}

type runStats struct {
	runIndex int
	seed     int64

	baseDraws int
	minerals  int // deposits on the generated map
	energy    int

	firstMineTick    int
	firstHarvestTick int

	mined     int
	harvested int
	blocked   int
	exhausted int
}

// runOnce runs one seeded simulation silently and extracts statistics.
func runOnce(runIndex int, o options) (runStats, error) {
	opts, err := buildOptions(o)
	if err != nil {
		return runStats{}, err
	}
	sim, err := rover.NewSim(opts...)
	if err != nil {
		return runStats{}, err
	}
	rs := runStats{
		runIndex:  runIndex,
		seed:      o.seed,
		baseDraws: sim.Grid.BaseDraws(),
		minerals:  sim.Grid.Count(world.Mineral),
		energy:    sim.Grid.Count(world.Energy),
	}
	sim.RunTicks(o.ticks)

	entries := sim.SimLog.Entries()
	rs.firstMineTick = firstTick(entries, "mine", "extracted")
	rs.firstHarvestTick = firstTick(entries, "science", "harvested")
	rs.mined = sim.SimLog.CountCategory("mine", "extracted")
	rs.harvested = sim.SimLog.CountCategory("science", "harvested")
	rs.blocked = sim.SimLog.CountCategory("move", "blocked")
	rs.exhausted = sim.SimLog.CountCategory("energy", "exhausted")
	return rs, nil
}

// firstTick returns the tick of the first matching entry, or -1.
func firstTick(entries []rover.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("world: minerals=%d energy=%d base_draws=%d\n", rs.minerals, rs.energy, rs.baseDraws)
	fmt.Printf("phase_markers: first_mine=%d first_harvest=%d\n", rs.firstMineTick, rs.firstHarvestTick)
	fmt.Printf("event_totals: mined=%d harvested=%d blocked=%d exhausted=%d\n\n",
		rs.mined, rs.harvested, rs.blocked, rs.exhausted)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		fmt.Println("=== Aggregate ===\nno successful runs")
		return
	}
	totalMined, totalHarvested, totalMinerals, totalEnergy := 0, 0, 0, 0
	mineTicks := make([]int, 0, len(all))
	harvestTicks := make([]int, 0, len(all))
	for _, rs := range all {
		totalMined += rs.mined
		totalHarvested += rs.harvested
		totalMinerals += rs.minerals
		totalEnergy += rs.energy
		if rs.firstMineTick >= 0 {
			mineTicks = append(mineTicks, rs.firstMineTick)
		}
		if rs.firstHarvestTick >= 0 {
			harvestTicks = append(harvestTicks, rs.firstHarvestTick)
		}
	}
	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("deposits_generated: minerals=%s energy=%s\n",
		humanize.Comma(int64(totalMinerals)), humanize.Comma(int64(totalEnergy)))
	fmt.Printf("extracted: minerals=%s (%s) energy=%s (%s)\n",
		humanize.Comma(int64(totalMined)), percent(totalMined, totalMinerals),
		humanize.Comma(int64(totalHarvested)), percent(totalHarvested, totalEnergy))
	fmt.Printf("first_mine: runs=%d median=%d\n", len(mineTicks), median(mineTicks))
	fmt.Printf("first_harvest: runs=%d median=%d\n", len(harvestTicks), median(harvestTicks))
}

// median returns the median of vals, or -1 when empty. vals is sorted in place.
func median(vals []int) int {
	if len(vals) == 0 {
		return -1
	}
	sort.Ints(vals)
	return vals[len(vals)/2]
}

func percent(n, of int) string {
	if of == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
}

// buildOptions turns flags into simulation options.
func buildOptions(o options) ([]rover.SimOption, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("-width and -height must be > 0")
	}
	caps, err := rover.ParseRoster(o.rovers)
	if err != nil {
		return nil, err
	}
	var worldOpts []world.Option
	switch strings.ToLower(o.noise) {
	case "perlin":
	case "value":
		worldOpts = append(worldOpts, world.WithNoise(world.NewValueField))
	default:
		return nil, fmt.Errorf("unsupported noise %q (supported: perlin, value)", o.noise)
	}
	if o.baseOrigin {
		worldOpts = append(worldOpts, world.WithBaseMode(world.BaseOrigin))
	}

	opts := []rover.SimOption{
		rover.WithGridSize(o.width, o.height),
		rover.WithSeed(o.seed),
		rover.WithVerbose(o.verbose),
		rover.WithWorldOptions(worldOpts...),
		rover.WithCosts(rover.Costs{Move: o.moveCost}),
	}
	for _, c := range caps {
		opts = append(opts, rover.WithAgentAtBase(o.energy, c))
	}
	return opts, nil
}

// glyphSet resolves the -emoji flag; auto picks emoji only for terminals.
func glyphSet(mode string, terminal bool) (rover.GlyphSet, error) {
	switch strings.ToLower(mode) {
	case "on":
		return rover.GlyphsEmoji, nil
	case "off":
		return rover.GlyphsASCII, nil
	case "auto":
		if terminal {
			return rover.GlyphsEmoji, nil
		}
		return rover.GlyphsASCII, nil
	default:
		return rover.GlyphsASCII, fmt.Errorf("unsupported -emoji %q (supported: auto, on, off)", mode)
	}
}

// printWorld prints cell-kind totals for the generated grid.
func printWorld(g *world.Grid) {
	total := g.Width * g.Height
	b := g.Base()
	fmt.Printf("cells=%s base=(%d,%d)\n", humanize.Comma(int64(total)), b.X, b.Y)
	for _, c := range []world.Cell{world.Plain, world.Obstacle, world.Mineral, world.Energy} {
		n := g.Count(c)
		fmt.Printf("  %-9s %8s  %5.1f%%\n", c, humanize.Comma(int64(n)), 100*float64(n)/float64(total))
	}
	fmt.Println()
}
