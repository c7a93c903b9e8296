//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/view"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	sim := core.Sims()[cfg.Sim](cfg.SimConfig())
	world, ok := sim.(*life.World)
	if !ok {
		log.Fatalf("sim %q is not a life world", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	viewW, viewH := cfg.ViewSize()
	cam, err := view.NewCamera(viewW, viewH, cfg.Cell)
	if err != nil {
		log.Fatalf("camera: %v", err)
	}
	speed, err := core.ParseSpeed(cfg.Speed)
	if err != nil {
		log.Fatalf("speed: %v", err)
	}
	log.Printf("%s: rule %s, %d live cells, speed %s", world.Name(), world.Rule(), world.Population(), speed)

	game := app.New(app.NewSession(world, cam, speed), cfg.HUDWidth)

	ebiten.SetWindowTitle("lifegrid — " + world.Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
