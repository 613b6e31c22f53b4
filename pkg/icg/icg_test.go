package icg

import (
	"slices"
	"testing"
)

func TestParameterValidation(t *testing.T) {
	cases := []struct {
		name  string
		p     uint64
		a     uint64
		b     uint64
		seed  uint64
		valid bool
	}{
		{"small prime", 7, 3, 5, 1, true},
		{"millionth prime", 15485863, 213, 64, 1000, true},
		{"32-bit prime", 4294967291, 1588635695, 1117695901, 42, true},
		{"zero multiplier and offset", 7, 0, 0, 0, true},
		{"modulus not prime", 4, 1, 2, 3, false},
		{"modulus too small", 3, 1, 2, 1, false},
		{"modulus zero", 0, 0, 0, 0, false},
		{"multiplier out of range", 7, 7, 5, 1, false},
		{"offset out of range", 7, 3, 9, 1, false},
		{"seed out of range", 7, 3, 5, 7, false},
	}
	for _, tc := range cases {
		g := New(tc.p, tc.a, tc.b, tc.seed)
		if g.Valid() != tc.valid {
			t.Fatalf("%s: Valid() = %v, want %v", tc.name, g.Valid(), tc.valid)
		}
	}
}

func TestAccessors(t *testing.T) {
	g := New(15485863, 213, 64, 77)
	if g.P() != 15485863 || g.A() != 213 || g.B() != 64 {
		t.Fatalf("accessors returned p=%d a=%d b=%d", g.P(), g.A(), g.B())
	}
}

// (7, 3, 5) maps 1 to (3*1+5) mod 7 = 1, so the stream never leaves it.
func TestFixedPointStream(t *testing.T) {
	g := New(7, 3, 5, 1)
	if !g.Valid() {
		t.Fatal("parameters (7,3,5,1) must validate")
	}
	for i := 0; i < 8; i++ {
		if got := g.Next(); got != 1 {
			t.Fatalf("draw %d: got %d, want fixed point 1", i, got)
		}
	}
}

func TestInvalidGeneratorReturnsZero(t *testing.T) {
	g := New(4, 1, 2, 3)
	if g.Valid() {
		t.Fatal("4 is not prime; generator must be invalid")
	}
	for i := 0; i < 4; i++ {
		if got := g.Next(); got != 0 {
			t.Fatalf("Next on invalid generator: got %d, want 0", got)
		}
	}
	if got := g.Float64(); got != 0 {
		t.Fatalf("Float64 on invalid generator: got %v, want 0", got)
	}
	if got := g.Uint64n(10); got != 0 {
		t.Fatalf("Uint64n on invalid generator: got %d, want 0", got)
	}
	if got := g.Uniform(2, 5); got != 0 {
		t.Fatalf("Uniform on invalid generator: got %v, want 0", got)
	}
	if got := g.NormFloat64(); got != 0 {
		t.Fatalf("NormFloat64 on invalid generator: got %v, want 0", got)
	}
	if got := g.Normal(5, 2); got != 0 {
		t.Fatalf("Normal on invalid generator: got %v, want 0", got)
	}
}

func TestZeroStateReturnsOffset(t *testing.T) {
	// Seed 0 makes the first draw hit the zero special case.
	g := New(11, 7, 5, 0)
	if got := g.Next(); got != 5 {
		t.Fatalf("draw from zero state: got %d, want offset 5", got)
	}
	// 5 is invertible mod 11 (inverse 9), so the stream continues:
	// (7*9+5) mod 11 = 2.
	if got := g.Next(); got != 2 {
		t.Fatalf("second draw: got %d, want 2", got)
	}
}

func TestZeroOffsetZeroSeedSticksAtZero(t *testing.T) {
	g := New(7, 3, 0, 0)
	if !g.Valid() {
		t.Fatal("zero offset and seed are legal parameters")
	}
	for i := 0; i < 4; i++ {
		if got := g.Next(); got != 0 {
			t.Fatalf("draw %d: got %d, want 0", i, got)
		}
	}
}

func TestNextStaysBelowModulus(t *testing.T) {
	g := New(15485863, 213, 64, 7)
	seen := make(map[uint64]bool)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		if v >= 15485863 {
			t.Fatalf("draw %d out of range: %d", i, v)
		}
		seen[v] = true
	}
	// A short cycle would collapse the draw count into few values.
	if len(seen) < 1000 {
		t.Fatalf("only %d distinct values in 10000 draws", len(seen))
	}
}

func TestStreamsAreDeterministic(t *testing.T) {
	g1 := New(15485863, 213, 64, 12345)
	g2 := New(15485863, 213, 64, 12345)
	a := make([]uint64, 64)
	b := make([]uint64, 64)
	for i := range a {
		a[i] = g1.Next()
		b[i] = g2.Next()
	}
	if !slices.Equal(a, b) {
		t.Fatal("same parameters and seed must reproduce the stream")
	}
}

func TestReseedRestartsStream(t *testing.T) {
	g := New(15485863, 213, 64, 999)
	first := make([]uint64, 32)
	for i := range first {
		first[i] = g.Next()
	}
	if !g.Reseed(999) {
		t.Fatal("reseed with an in-range seed must stay valid")
	}
	for i := range first {
		if got := g.Next(); got != first[i] {
			t.Fatalf("draw %d after reseed: got %d, want %d", i, got, first[i])
		}
	}
	if g.Reseed(15485863) {
		t.Fatal("seed equal to the modulus must invalidate")
	}
	if got := g.Next(); got != 0 {
		t.Fatalf("draw after invalid reseed: got %d, want 0", got)
	}
}

func TestReparametrizeSwitchesStream(t *testing.T) {
	g := New(15485863, 213, 64, 10)
	g.Next()
	if !g.Reparametrize(7, 3, 5, 1) {
		t.Fatal("reparametrize to (7,3,5,1) must validate")
	}
	if got := g.Next(); got != 1 {
		t.Fatalf("after reparametrize: got %d, want fixed point 1", got)
	}
	if g.Reparametrize(4, 1, 2, 3) {
		t.Fatal("reparametrize to a composite modulus must invalidate")
	}
	if got := g.Next(); got != 0 {
		t.Fatalf("draw on invalidated generator: got %d, want 0", got)
	}
	// The generator recovers once given usable parameters again.
	if !g.Reparametrize(11, 7, 5, 0) {
		t.Fatal("reparametrize back to valid parameters must succeed")
	}
	if got := g.Next(); got != 5 {
		t.Fatalf("draw after recovery: got %d, want 5", got)
	}
}

func TestFloat64Bounds(t *testing.T) {
	g := New(15485863, 213, 64, 31)
	for i := 0; i < 10000; i++ {
		v := g.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestUint64nBounds(t *testing.T) {
	g := New(15485863, 213, 64, 63)
	for i := 0; i < 10000; i++ {
		if v := g.Uint64n(37); v >= 37 {
			t.Fatalf("draw %d out of [0,37): %d", i, v)
		}
	}
	if got := g.Uint64n(0); got != 0 {
		t.Fatalf("Uint64n(0): got %d, want 0", got)
	}
	if got := g.Uint64n(1); got != 0 {
		t.Fatalf("Uint64n(1): got %d, want 0", got)
	}
}

func TestUniformInterval(t *testing.T) {
	g := New(15485863, 213, 64, 99)
	if got := g.Uniform(4.5, 4.5); got != 4.5 {
		t.Fatalf("degenerate interval: got %v, want 4.5", got)
	}
	for i := 0; i < 2000; i++ {
		v := g.Uniform(-3, 9)
		if v < -3 || v >= 9 {
			t.Fatalf("draw %d out of [-3,9): %v", i, v)
		}
	}
	// Reversed bounds describe the same interval.
	for i := 0; i < 2000; i++ {
		v := g.Uniform(9, -3)
		if v < -3 || v >= 9 {
			t.Fatalf("reversed-bounds draw %d out of [-3,9): %v", i, v)
		}
	}
}
