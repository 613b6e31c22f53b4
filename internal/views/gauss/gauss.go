package gauss

import (
	"image/color"
	"strconv"

	"github.com/RNA33/ICG/internal/core"
	"github.com/RNA33/ICG/pkg/icg"
)

func init() {
	core.Register("gauss", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}

// Config holds the gauss view parameters.
type Config struct {
	Width  int
	Height int

	P uint64
	A uint64
	B uint64

	PointsPerStep int
	Sigma         float64
	Fade          uint8
}

// DefaultConfig returns the standard gauss configuration.
func DefaultConfig() Config {
	return Config{
		Width:         256,
		Height:        256,
		P:             icg.DefaultP,
		A:             icg.DefaultA,
		B:             icg.DefaultB,
		PointsPerStep: 256,
		Sigma:         40,
		Fade:          0,
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
	if v, ok := cfg["sigma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Sigma = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.Fade = uint8(parsed)
		}
	}
	return c
}

// Gauss accumulates normally distributed hits around the canvas center.
// The density should build into a radially symmetric bell; ridges or
// gaps betray a broken transform or stream.
type Gauss struct {
	cfg  Config
	grid *core.ByteGrid
	gen  *icg.Generator
	seed uint64
}

// New constructs a gauss view from the given configuration.
func New(cfg Config) *Gauss {
	return &Gauss{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
		gen:  icg.New(cfg.P, cfg.A, cfg.B, 0),
	}
}

// Name returns the registry name of the view.
func (g *Gauss) Name() string { return "gauss" }

// Size returns the canvas dimensions.
func (g *Gauss) Size() core.Size { return core.Size{W: g.grid.W, H: g.grid.H} }

// Cells exposes the current density buffer.
func (g *Gauss) Cells() []uint8 { return g.grid.Cells() }

// Reset clears the density and restarts the stream at the seed.
func (g *Gauss) Reset(seed uint64) {
	if g.cfg.P > 0 {
		seed %= g.cfg.P
	}
	g.seed = seed
	g.gen.Reparametrize(g.cfg.P, g.cfg.A, g.cfg.B, seed)
	g.grid.Clear()
}

// Step scatters a batch of normal hits around the center. Points beyond
// the canvas are dropped rather than wrapped, which would fold the tails
// back into the bell.
func (g *Gauss) Step() {
	g.grid.Fade(g.cfg.Fade)
	if !g.gen.Valid() {
		return
	}
	cx := float64(g.grid.W) / 2
	cy := float64(g.grid.H) / 2
	variance := g.cfg.Sigma * g.cfg.Sigma
	for i := 0; i < g.cfg.PointsPerStep; i++ {
		x := int(g.gen.Normal(cx, variance))
		y := int(g.gen.Normal(cy, variance))
		if x < 0 || x >= g.grid.W || y < 0 || y >= g.grid.H {
			continue
		}
		g.grid.Add(x, y, 8)
	}
}

// Palette maps density to a heat ramp.
func (g *Gauss) Palette() []color.RGBA {
	return heatPalette
}

var heatPalette = buildHeatPalette()

func buildHeatPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	ember := color.RGBA{R: 64, G: 8, B: 8, A: 255}
	flame := color.RGBA{R: 224, G: 64, B: 16, A: 255}
	glow := color.RGBA{R: 255, G: 224, B: 128, A: 255}
	for i := range palette {
		t := float64(i) / 255
		if t < 0.5 {
			palette[i] = blendColors(ember, flame, t*2)
			continue
		}
		palette[i] = blendColors(flame, glow, (t-0.5)*2)
	}
	palette[0] = color.RGBA{A: 255}
	return palette
}

func blendColors(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// Parameters reports the generator and scatter settings for the HUD.
func (g *Gauss) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.UintParam("p", "Modulus", g.gen.P()),
				core.UintParam("a", "Multiplier", g.gen.A()),
				core.UintParam("b", "Offset", g.gen.B()),
				core.BoolParam("valid", "Valid", g.gen.Valid()),
			},
		},
		{
			Name: "Bell",
			Params: []core.Parameter{
				core.FloatParam("sigma", "Sigma", g.cfg.Sigma),
				core.UintParam("points", "Points per step", uint64(g.cfg.PointsPerStep)),
				core.UintParam("fade", "Fade", uint64(g.cfg.Fade)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (g *Gauss) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "a", Label: "Multiplier", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "b", Label: "Offset", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "sigma", Label: "Sigma", Type: core.ParamTypeFloat, Step: 2, Min: 1, HasMin: true, Max: float64(g.cfg.Width), HasMax: true},
		{Key: "points", Label: "Points per step", Type: core.ParamTypeUint, Step: 32, Min: 32, HasMin: true, Max: 4096, HasMax: true},
		{Key: "fade", Label: "Fade", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true, Max: 32, HasMax: true},
	}
	if g.cfg.P > 0 {
		limit := float64(g.cfg.P - 1)
		controls[0].Max, controls[0].HasMax = limit, true
		controls[1].Max, controls[1].HasMax = limit, true
	}
	return controls
}

// SetUintParameter applies a HUD adjustment; generator changes restart
// the stream from the current seed.
func (g *Gauss) SetUintParameter(key string, value uint64) bool {
	switch key {
	case "a":
		if value >= g.cfg.P {
			return false
		}
		g.cfg.A = value
	case "b":
		if value >= g.cfg.P {
			return false
		}
		g.cfg.B = value
	case "points":
		if value < 1 || value > 4096 {
			return false
		}
		g.cfg.PointsPerStep = int(value)
		return true
	case "fade":
		if value > 32 {
			return false
		}
		g.cfg.Fade = uint8(value)
		return true
	default:
		return false
	}
	g.gen.Reparametrize(g.cfg.P, g.cfg.A, g.cfg.B, g.seed)
	return true
}

// SetFloatParameter applies a HUD adjustment to the spread.
func (g *Gauss) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "sigma":
		if value <= 0 || value > float64(g.cfg.Width) {
			return false
		}
		g.cfg.Sigma = value
		return true
	default:
		return false
	}
}
