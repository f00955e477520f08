//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"rulegrid/internal/app"
	"rulegrid/internal/presets"
	"rulegrid/internal/setup"
)

func main() {
	cfg := setup.NewConfig()
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "list available presets and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(presets.Names(), "\n"))
		return
	}

	auto, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(auto, cfg.Scale, cfg.SPS)
	rows, cols := auto.Grid().Dims()

	title := "rulegrid"
	if cfg.GridFile == "" {
		title += ": " + cfg.Preset
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
