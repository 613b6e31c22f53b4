package lattice

import (
	"strconv"

	"github.com/RNA33/ICG/internal/core"
	"github.com/RNA33/ICG/pkg/icg"
)

func init() {
	core.Register("lattice", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}

// Config holds the lattice view parameters.
type Config struct {
	Width  int
	Height int

	P uint64
	A uint64
	B uint64

	PointsPerStep int
	Fade          uint8
}

// DefaultConfig returns the standard lattice configuration.
func DefaultConfig() Config {
	return Config{
		Width:         256,
		Height:        256,
		P:             icg.DefaultP,
		A:             icg.DefaultA,
		B:             icg.DefaultB,
		PointsPerStep: 512,
		Fade:          4,
	}
}

// FromMap builds a Config from a string map, falling back to defaults
// for missing or malformed entries.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.P = parsed
		}
	}
	if v, ok := cfg["a"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.A = parsed
		}
	}
	if v, ok := cfg["b"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.B = parsed
		}
	}
	if v, ok := cfg["points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PointsPerStep = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.Fade = uint8(parsed)
		}
	}
	return c
}

// Lattice scatters consecutive draw pairs (u1, u2) over the plane. A
// linear congruential stream would collapse onto a family of parallel
// lines here; the inversive stream should fill the square evenly.
type Lattice struct {
	cfg  Config
	grid *core.ByteGrid
	gen  *icg.Generator
	seed uint64
}

// New constructs a lattice view from the given configuration.
func New(cfg Config) *Lattice {
	return &Lattice{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
		gen:  icg.New(cfg.P, cfg.A, cfg.B, 0),
	}
}

// Name returns the registry name of the view.
func (l *Lattice) Name() string { return "lattice" }

// Size returns the canvas dimensions.
func (l *Lattice) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current intensity buffer.
func (l *Lattice) Cells() []uint8 { return l.grid.Cells() }

// Reset clears the canvas and restarts the stream at the seed.
func (l *Lattice) Reset(seed uint64) {
	if l.cfg.P > 0 {
		seed %= l.cfg.P
	}
	l.seed = seed
	l.gen.Reparametrize(l.cfg.P, l.cfg.A, l.cfg.B, seed)
	l.grid.Clear()
}

// Step fades the previous frame and scatters a fresh batch of pairs.
func (l *Lattice) Step() {
	l.grid.Fade(l.cfg.Fade)
	w := uint64(l.grid.W)
	h := uint64(l.grid.H)
	for i := 0; i < l.cfg.PointsPerStep; i++ {
		x := int(l.gen.Uint64n(w))
		y := int(l.gen.Uint64n(h))
		l.grid.Add(x, y, 96)
	}
}

// Parameters reports the generator and scatter settings for the HUD.
func (l *Lattice) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.UintParam("p", "Modulus", l.gen.P()),
				core.UintParam("a", "Multiplier", l.gen.A()),
				core.UintParam("b", "Offset", l.gen.B()),
				core.BoolParam("valid", "Valid", l.gen.Valid()),
			},
		},
		{
			Name: "Scatter",
			Params: []core.Parameter{
				core.UintParam("points", "Points per step", uint64(l.cfg.PointsPerStep)),
				core.UintParam("fade", "Fade", uint64(l.cfg.Fade)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (l *Lattice) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "a", Label: "Multiplier", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "b", Label: "Offset", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "points", Label: "Points per step", Type: core.ParamTypeUint, Step: 64, Min: 64, HasMin: true, Max: 8192, HasMax: true},
		{Key: "fade", Label: "Fade", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true, Max: 32, HasMax: true},
	}
	if l.cfg.P > 0 {
		limit := float64(l.cfg.P - 1)
		controls[0].Max, controls[0].HasMax = limit, true
		controls[1].Max, controls[1].HasMax = limit, true
	}
	return controls
}

// SetUintParameter applies a HUD adjustment; generator changes restart
// the stream from the current seed.
func (l *Lattice) SetUintParameter(key string, value uint64) bool {
	switch key {
	case "a":
		if value >= l.cfg.P {
			return false
		}
		l.cfg.A = value
	case "b":
		if value >= l.cfg.P {
			return false
		}
		l.cfg.B = value
	case "points":
		if value < 1 || value > 8192 {
			return false
		}
		l.cfg.PointsPerStep = int(value)
		return true
	case "fade":
		if value > 32 {
			return false
		}
		l.cfg.Fade = uint8(value)
		return true
	default:
		return false
	}
	l.gen.Reparametrize(l.cfg.P, l.cfg.A, l.cfg.B, l.seed)
	return true
}
