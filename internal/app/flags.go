package app

import (
	"flag"
	"strconv"

	"github.com/RNA33/ICG/pkg/icg"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	View  string
	Scale int
	SPS   int
	Seed  uint64

	P uint64
	A uint64
	B uint64
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		View:  "raster",
		Scale: 3,
		SPS:   60,
		Seed:  42,
		P:     icg.DefaultP,
		A:     icg.DefaultA,
		B:     icg.DefaultB,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to run (see registered views)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "view steps per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for view resets")
	fs.Uint64Var(&c.P, "p", c.P, "generator modulus (prime)")
	fs.Uint64Var(&c.A, "a", c.A, "generator multiplier")
	fs.Uint64Var(&c.B, "b", c.B, "generator offset")
}

// ViewOptions renders the generator parameters as the option map view
// factories consume.
func (c *Config) ViewOptions() map[string]string {
	return map[string]string{
		"p": strconv.FormatUint(c.P, 10),
		"a": strconv.FormatUint(c.A, 10),
		"b": strconv.FormatUint(c.B, 10),
	}
}
