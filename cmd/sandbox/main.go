//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"powder-sandbox/internal/app"
	"powder-sandbox/internal/core"
	_ "powder-sandbox/internal/sims/powder"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Values())
	if err != nil {
		log.Fatal(err)
	}
	sandbox, ok := sim.(app.Sandbox)
	if !ok {
		log.Fatalf("sim %q does not support painting", cfg.Sim)
	}

	game, err := app.New(sandbox, cfg)
	if err != nil {
		log.Fatal(err)
	}
	size := sim.Size()

	ebiten.SetWindowTitle("powder-sandbox: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
