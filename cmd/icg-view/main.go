//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/RNA33/ICG/internal/app"
	"github.com/RNA33/ICG/internal/core"
	_ "github.com/RNA33/ICG/internal/views/gauss"
	_ "github.com/RNA33/ICG/internal/views/lattice"
	_ "github.com/RNA33/ICG/internal/views/raster"
	_ "github.com/RNA33/ICG/internal/views/walk"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Views()[cfg.View]
	if !ok {
		log.Fatalf("unknown view %q (have %v)", cfg.View, core.Names())
	}

	opts := cfg.ViewOptions()
	view := factory(opts)
	view.Reset(cfg.Seed)

	game := app.New(view, opts, cfg.Scale, cfg.SPS, cfg.Seed)
	size := view.Size()

	ebiten.SetWindowTitle("icg — " + view.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
