package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Rover-Sense/internal/game"
	"github.com/Garsondee/Rover-Sense/internal/rover"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	var roster string
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.IntVar(&cfg.CellPx, "cell", cfg.CellPx, "pixels per cell")
	flag.Int64Var(&cfg.Seed, "seed", 0, "world seed (0 = time-based)")
	flag.StringVar(&roster, "rovers", "explorer+miner,scientist,none", "comma-separated capability sets, one per rover")
	flag.BoolVar(&cfg.BaseOrigin, "base-origin", false, "put the base at (0,0) instead of a random clear site")
	flag.Parse()

	caps, err := rover.ParseRoster(roster)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Rovers = caps

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Size()
	ebiten.SetWindowTitle("Rover Sense")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
