package raster

import (
	"strconv"

	"github.com/RNA33/ICG/internal/core"
	"github.com/RNA33/ICG/pkg/icg"
)

func init() {
	core.Register("raster", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}

// Config holds the raster view parameters.
type Config struct {
	Width  int
	Height int

	P uint64
	A uint64
	B uint64

	RowsPerStep int
}

// DefaultConfig returns the standard raster configuration.
func DefaultConfig() Config {
	return Config{
		Width:       256,
		Height:      256,
		P:           icg.DefaultP,
		A:           icg.DefaultA,
		B:           icg.DefaultB,
		RowsPerStep: 8,
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
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RowsPerStep = parsed
		}
	}
	if c.RowsPerStep > c.Height {
		c.RowsPerStep = c.Height
	}
	return c
}

// Raster scrolls a live bitmap of raw generator output: every pixel is
// one byte drawn from the stream, so structure in the output shows up as
// visible texture.
type Raster struct {
	cfg  Config
	grid *core.ByteGrid
	gen  *icg.Generator
	seed uint64
}

// New constructs a raster view from the given configuration.
func New(cfg Config) *Raster {
	return &Raster{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
		gen:  icg.New(cfg.P, cfg.A, cfg.B, 0),
	}
}

// Name returns the registry name of the view.
func (r *Raster) Name() string { return "raster" }

// Size returns the canvas dimensions.
func (r *Raster) Size() core.Size { return core.Size{W: r.grid.W, H: r.grid.H} }

// Cells exposes the current intensity buffer.
func (r *Raster) Cells() []uint8 { return r.grid.Cells() }

// Reset restarts the stream at the seed and refills the whole canvas.
func (r *Raster) Reset(seed uint64) {
	if r.cfg.P > 0 {
		seed %= r.cfg.P
	}
	r.seed = seed
	r.gen.Reparametrize(r.cfg.P, r.cfg.A, r.cfg.B, seed)
	cells := r.grid.Cells()
	for i := range cells {
		cells[i] = uint8(r.gen.Uint64n(256))
	}
}

// Step scrolls history down and draws fresh rows along the top.
func (r *Raster) Step() {
	rows := r.cfg.RowsPerStep
	if rows <= 0 {
		rows = 1
	}
	if rows > r.grid.H {
		rows = r.grid.H
	}
	w := r.grid.W
	cells := r.grid.Cells()
	copy(cells[rows*w:], cells[:w*(r.grid.H-rows)])
	for i := 0; i < rows*w; i++ {
		cells[i] = uint8(r.gen.Uint64n(256))
	}
}

// Parameters reports the generator and scroll settings for the HUD.
func (r *Raster) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.UintParam("p", "Modulus", r.gen.P()),
				core.UintParam("a", "Multiplier", r.gen.A()),
				core.UintParam("b", "Offset", r.gen.B()),
				core.BoolParam("valid", "Valid", r.gen.Valid()),
			},
		},
		{
			Name: "Scroll",
			Params: []core.Parameter{
				core.UintParam("rows", "Rows per step", uint64(r.cfg.RowsPerStep)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (r *Raster) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "a", Label: "Multiplier", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "b", Label: "Offset", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "rows", Label: "Rows per step", Type: core.ParamTypeUint, Step: 1, Min: 1, HasMin: true, Max: 64, HasMax: true},
	}
	if r.cfg.P > 0 {
		limit := float64(r.cfg.P - 1)
		controls[0].Max, controls[0].HasMax = limit, true
		controls[1].Max, controls[1].HasMax = limit, true
	}
	return controls
}

// SetUintParameter applies a HUD adjustment; generator changes restart
// the stream from the current seed.
func (r *Raster) SetUintParameter(key string, value uint64) bool {
	switch key {
	case "a":
		if value >= r.cfg.P {
			return false
		}
		r.cfg.A = value
	case "b":
		if value >= r.cfg.P {
			return false
		}
		r.cfg.B = value
	case "rows":
		if value < 1 || value > 64 {
			return false
		}
		r.cfg.RowsPerStep = int(value)
		return true
	default:
		return false
	}
	r.gen.Reparametrize(r.cfg.P, r.cfg.A, r.cfg.B, r.seed)
	return true
}
