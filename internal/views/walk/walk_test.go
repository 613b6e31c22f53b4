package walk

import (
	"slices"
	"testing"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.MovesPerStep = 64
	v := New(cfg)

	v.Reset(11)
	v.Step()
	v.Step()
	first := append([]uint8(nil), v.Cells()...)

	v.Step()
	v.Reset(11)
	v.Step()
	v.Step()
	if !slices.Equal(first, v.Cells()) {
		t.Fatal("same seed must replay the same trail")
	}
}

func TestWalkerLeavesBoundedTrail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.MovesPerStep = 16
	cfg.Fade = 0
	v := New(cfg)
	v.Reset(5)

	v.Step()
	lit := 0
	for _, c := range v.Cells() {
		if c != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("walker must mark cells")
	}
	if lit > cfg.MovesPerStep {
		t.Fatalf("%d cells lit by %d moves", lit, cfg.MovesPerStep)
	}
}

func TestWalkerWrapsAtEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 4
	cfg.MovesPerStep = 256
	v := New(cfg)
	v.Reset(9)
	// On a 4x4 torus every index the walker touches must stay in range;
	// Index would read out of bounds otherwise and the test would panic.
	for i := 0; i < 20; i++ {
		v.Step()
	}
}

func TestPaletteShape(t *testing.T) {
	v := New(DefaultConfig())
	palette := v.Palette()
	if len(palette) != 256 {
		t.Fatalf("palette has %d entries, want 256", len(palette))
	}
	// Background stays dark, the head entry is the brightest.
	if palette[0].R != 0 || palette[0].G != 0 || palette[0].B != 0 {
		t.Fatal("entry 0 must be black")
	}
	head := palette[255]
	if head.R < 100 || head.G < 200 || head.B < 200 {
		t.Fatalf("head entry too dark: %+v", head)
	}
}
