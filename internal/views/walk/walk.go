package walk

import (
	"image/color"
	"strconv"

	"github.com/RNA33/ICG/internal/core"
	"github.com/RNA33/ICG/pkg/icg"
)

func init() {
	core.Register("walk", func(cfg map[string]string) core.View {
		return New(FromMap(cfg))
	})
}

// Config holds the walk view parameters.
type Config struct {
	Width  int
	Height int

	P uint64
	A uint64
	B uint64

	MovesPerStep int
	Fade         uint8
}

// DefaultConfig returns the standard walk configuration.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       256,
		P:            icg.DefaultP,
		A:            icg.DefaultA,
		B:            icg.DefaultB,
		MovesPerStep: 128,
		Fade:         1,
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
	if v, ok := cfg["moves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MovesPerStep = parsed
		}
	}
	if v, ok := cfg["fade"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.Fade = uint8(parsed)
		}
	}
	return c
}

// Walk drives a random walker over a toroidal canvas. Each move consumes
// one draw; a biased stream shows up as drift or banding in the trail.
type Walk struct {
	cfg  Config
	grid *core.ByteGrid
	gen  *icg.Generator
	seed uint64
	x, y int
}

// New constructs a walk view from the given configuration.
func New(cfg Config) *Walk {
	return &Walk{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
		gen:  icg.New(cfg.P, cfg.A, cfg.B, 0),
	}
}

// Name returns the registry name of the view.
func (w *Walk) Name() string { return "walk" }

// Size returns the canvas dimensions.
func (w *Walk) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the current trail buffer.
func (w *Walk) Cells() []uint8 { return w.grid.Cells() }

// Reset clears the trail, recenters the walker and restarts the stream.
func (w *Walk) Reset(seed uint64) {
	if w.cfg.P > 0 {
		seed %= w.cfg.P
	}
	w.seed = seed
	w.gen.Reparametrize(w.cfg.P, w.cfg.A, w.cfg.B, seed)
	w.grid.Clear()
	w.x = w.grid.W / 2
	w.y = w.grid.H / 2
}

// Step fades the trail and advances the walker.
func (w *Walk) Step() {
	w.grid.Fade(w.cfg.Fade)
	cells := w.grid.Cells()
	for i := 0; i < w.cfg.MovesPerStep; i++ {
		switch w.gen.Uint64n(4) {
		case 0:
			w.x++
		case 1:
			w.x--
		case 2:
			w.y++
		case 3:
			w.y--
		}
		w.x, w.y = w.grid.Wrap(w.x, w.y)
		cells[w.grid.Index(w.x, w.y)] = 255
	}
}

// Palette maps trail age to color, brightest at the walker's head.
func (w *Walk) Palette() []color.RGBA {
	return walkPalette
}

var walkPalette = buildWalkPalette()

func buildWalkPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	deep := color.RGBA{R: 8, G: 12, B: 48, A: 255}
	mid := color.RGBA{R: 24, G: 96, B: 192, A: 255}
	head := color.RGBA{R: 160, G: 240, B: 255, A: 255}
	for i := range palette {
		t := float64(i) / 255
		if t < 0.5 {
			palette[i] = blendColors(deep, mid, t*2)
			continue
		}
		palette[i] = blendColors(mid, head, (t-0.5)*2)
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

// Parameters reports the generator and walker settings for the HUD.
func (w *Walk) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generator",
			Params: []core.Parameter{
				core.UintParam("p", "Modulus", w.gen.P()),
				core.UintParam("a", "Multiplier", w.gen.A()),
				core.UintParam("b", "Offset", w.gen.B()),
				core.BoolParam("valid", "Valid", w.gen.Valid()),
			},
		},
		{
			Name: "Walker",
			Params: []core.Parameter{
				core.UintParam("moves", "Moves per step", uint64(w.cfg.MovesPerStep)),
				core.UintParam("fade", "Fade", uint64(w.cfg.Fade)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *Walk) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "a", Label: "Multiplier", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "b", Label: "Offset", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true},
		{Key: "moves", Label: "Moves per step", Type: core.ParamTypeUint, Step: 32, Min: 32, HasMin: true, Max: 4096, HasMax: true},
		{Key: "fade", Label: "Fade", Type: core.ParamTypeUint, Step: 1, Min: 0, HasMin: true, Max: 32, HasMax: true},
	}
	if w.cfg.P > 0 {
		limit := float64(w.cfg.P - 1)
		controls[0].Max, controls[0].HasMax = limit, true
		controls[1].Max, controls[1].HasMax = limit, true
	}
	return controls
}

// SetUintParameter applies a HUD adjustment; generator changes restart
// the stream from the current seed.
func (w *Walk) SetUintParameter(key string, value uint64) bool {
	switch key {
	case "a":
		if value >= w.cfg.P {
			return false
		}
		w.cfg.A = value
	case "b":
		if value >= w.cfg.P {
			return false
		}
		w.cfg.B = value
	case "moves":
		if value < 1 || value > 4096 {
			return false
		}
		w.cfg.MovesPerStep = int(value)
		return true
	case "fade":
		if value > 32 {
			return false
		}
		w.cfg.Fade = uint8(value)
		return true
	default:
		return false
	}
	w.gen.Reparametrize(w.cfg.P, w.cfg.A, w.cfg.B, w.seed)
	return true
}
