// Package setup holds the command-line configuration shared by the
// rulegrid commands and builds automatons from it.
package setup

import (
	"errors"
	"flag"
	"strconv"

	"rulegrid/internal/presets"
	"rulegrid/pkg/automaton"
	"rulegrid/pkg/ruleset"
	"rulegrid/pkg/textgrid"
)

// Config represents the command-line parameters for the rulegrid commands.
type Config struct {
	Preset    string
	GridFile  string
	RulesFile string

	Width  int
	Height int
	Seed   int64

	Workers int

	Scale int
	TPS   int
	SPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "life", Scale: 3, TPS: 60, Seed: automaton.DefaultSeed}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset automaton to run")
	fs.StringVar(&c.GridFile, "grid", c.GridFile, "initial grid text file (overrides -preset, needs -rules)")
	fs.StringVar(&c.RulesFile, "rules", c.RulesFile, "YAML rule description file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width for presets (0 = preset default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height for presets (0 = preset default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for probability sampling and initial state")
	fs.IntVar(&c.Workers, "workers", c.Workers, "proposal workers (0 = one per CPU)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render ticks per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second (0 = one per tick)")
}

// Build constructs the configured automaton, either from a grid file plus
// a rule file or from a registered preset.
func (c *Config) Build() (*automaton.Automaton, error) {
	if c.GridFile != "" {
		if c.RulesFile == "" {
			return nil, errors.New("setup: -grid needs a -rules file")
		}
		g, err := textgrid.ReadFile(c.GridFile)
		if err != nil {
			return nil, err
		}
		set, err := ruleset.Load(c.RulesFile)
		if err != nil {
			return nil, err
		}
		b := automaton.NewBuilder().Grid(g).Seed(c.Seed).Workers(c.Workers)
		return set.Apply(b).Build()
	}

	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	return presets.New(c.Preset, opts)
}
