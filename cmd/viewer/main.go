//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"wildfire-ca/internal/app"
	"wildfire-ca/internal/core"
	_ "wildfire-ca/internal/scenario"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	if _, set := cfg.Options["seed"]; !set {
		cfg.Options["seed"] = strconv.FormatInt(cfg.Seed, 10)
	}
	sim, err := factory(cfg.Options)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("wildfire-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
