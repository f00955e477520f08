// Command batch runs an automaton headlessly for a fixed number of steps
// and writes the final grid as text and optionally PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"rulegrid/internal/render"
	"rulegrid/internal/setup"
	"rulegrid/pkg/textgrid"
)

func main() {
	cfg := setup.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "number of steps to simulate")
	out := flag.String("out", "", "write the final grid to this text file (default stdout)")
	imgOut := flag.String("png", "", "also write the final grid to this PNG file")
	flag.Parse()

	auto, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < *steps; i++ {
		if err := auto.Step(); err != nil {
			log.Fatalf("step %d: %v", auto.StepCount(), err)
		}
	}
	elapsed := time.Since(start)

	if *out != "" {
		if err := textgrid.WriteFile(*out, auto.Grid()); err != nil {
			log.Fatal(err)
		}
	} else {
		fmt.Print(textgrid.Format(auto.Grid()))
	}

	if *imgOut != "" {
		f, err := os.Create(*imgOut)
		if err != nil {
			log.Fatal(err)
		}
		pal := render.PaletteTable(auto.Palette())
		if err := png.Encode(f, render.ToImage(auto.Grid(), pal)); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	rows, cols := auto.Grid().Dims()
	log.Printf("simulated %d steps of a %dx%d grid in %s", auto.StepCount(), rows, cols, elapsed)
}
