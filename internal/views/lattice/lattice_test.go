package lattice

import (
	"slices"
	"testing"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.PointsPerStep = 128
	v := New(cfg)

	v.Reset(42)
	v.Step()
	first := append([]uint8(nil), v.Cells()...)

	v.Step()
	v.Reset(42)
	v.Step()
	if !slices.Equal(first, v.Cells()) {
		t.Fatal("same seed must replay the same scatter")
	}
}

func TestStepScatters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.PointsPerStep = 256
	v := New(cfg)
	v.Reset(7)

	v.Step()
	lit := 0
	for _, c := range v.Cells() {
		if c != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("step must light cells")
	}
	if lit > cfg.PointsPerStep {
		t.Fatalf("%d cells lit by %d points", lit, cfg.PointsPerStep)
	}
}

func TestFadeDecaysTrail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 8
	cfg.Height = 8
	// No fresh points: Step reduces to a pure fade pass.
	cfg.PointsPerStep = 0
	cfg.Fade = 10
	v := New(cfg)
	v.Reset(1)

	cells := v.Cells()
	cells[0] = 200
	cells[1] = 10
	cells[2] = 3

	v.Step()
	if cells[0] != 190 {
		t.Fatalf("cell 0: got %d, want 190", cells[0])
	}
	if cells[1] != 0 || cells[2] != 0 {
		t.Fatalf("low cells must clamp to zero, got %d and %d", cells[1], cells[2])
	}
}

func TestPointsStayOnCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	v := New(cfg)
	v.Reset(3)
	// Add panics on out-of-range indices, so surviving many steps is the
	// assertion here.
	for i := 0; i < 50; i++ {
		v.Step()
	}
}
