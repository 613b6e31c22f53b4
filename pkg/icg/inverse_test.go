package icg

import (
	"math/big"
	"testing"
)

func TestModInverseSmallPrimesExhaustive(t *testing.T) {
	for _, p := range []uint64{5, 7, 11, 101, 997, 10007} {
		for y := uint64(2); y < p; y++ {
			z := modInverse(y, p)
			if z == 0 || z >= p {
				t.Fatalf("p=%d y=%d: inverse %d out of range", p, y, z)
			}
			if y*z%p != 1 {
				t.Fatalf("p=%d y=%d: %d*%d mod %d = %d, want 1", p, y, y, z, p, y*z%p)
			}
		}
	}
}

func TestModInverseContract(t *testing.T) {
	if got := modInverse(0, 7); got != 0 {
		t.Fatalf("inverse of 0: got %d, want 0", got)
	}
	if got := modInverse(1, 7); got != 1 {
		t.Fatalf("inverse of 1: got %d, want 1", got)
	}
	if got := modInverse(7, 7); got != 0 {
		t.Fatalf("inverse of y == p: got %d, want 0", got)
	}
	if got := modInverse(9, 7); got != 0 {
		t.Fatalf("inverse of y > p: got %d, want 0", got)
	}
	// Composite modulus, shared factor: no inverse exists.
	if got := modInverse(6, 9); got != 0 {
		t.Fatalf("inverse of 6 mod 9: got %d, want 0", got)
	}
}

// The large moduli exercise the 128-bit product and carry paths; results
// are checked against math/big.
func TestModInverseLargeModuli(t *testing.T) {
	primes := []uint64{
		2147483647,           // 2^31 - 1
		9223372036854775783,  // largest prime below 2^63
		18446744073709551557, // largest prime below 2^64
	}
	for _, p := range primes {
		bigP := new(big.Int).SetUint64(p)
		for _, y := range []uint64{2, 3, 65537, 4294967295, p - 1} {
			z := modInverse(y, p)
			want := new(big.Int).ModInverse(new(big.Int).SetUint64(y), bigP)
			if want == nil {
				t.Fatalf("math/big found no inverse for y=%d p=%d", y, p)
			}
			if z != want.Uint64() {
				t.Fatalf("p=%d y=%d: got %d, want %d", p, y, z, want.Uint64())
			}
			if got := mulmod(y, z, p); got != 1 {
				t.Fatalf("p=%d y=%d: y*inverse mod p = %d, want 1", p, y, got)
			}
		}
	}
}

func TestMulmodMatchesBigInt(t *testing.T) {
	p := uint64(18446744073709551557)
	bigP := new(big.Int).SetUint64(p)
	cases := [][2]uint64{
		{p - 1, p - 1},
		{p - 2, 2},
		{1234567890123456789, 9876543210987654321},
		{1, p - 1},
		{0, p - 1},
	}
	for _, c := range cases {
		got := mulmod(c[0], c[1], p)
		want := new(big.Int).Mul(new(big.Int).SetUint64(c[0]), new(big.Int).SetUint64(c[1]))
		want.Mod(want, bigP)
		if got != want.Uint64() {
			t.Fatalf("mulmod(%d, %d): got %d, want %d", c[0], c[1], got, want.Uint64())
		}
	}
}

func TestAddmodCarry(t *testing.T) {
	p := uint64(18446744073709551557)
	// (p-1)+(p-1) wraps uint64; the carry path must still reduce mod p.
	if got := addmod(p-1, p-1, p); got != p-2 {
		t.Fatalf("addmod(p-1, p-1): got %d, want %d", got, p-2)
	}
	if got := addmod(0, 0, p); got != 0 {
		t.Fatalf("addmod(0, 0): got %d, want 0", got)
	}
	if got := addmod(p-1, 1, p); got != 0 {
		t.Fatalf("addmod(p-1, 1): got %d, want 0", got)
	}
}

func TestSubmodWraps(t *testing.T) {
	if got := submod(3, 5, 7); got != 5 {
		t.Fatalf("submod(3, 5, 7): got %d, want 5", got)
	}
	if got := submod(5, 3, 7); got != 2 {
		t.Fatalf("submod(5, 3, 7): got %d, want 2", got)
	}
	if got := submod(4, 4, 7); got != 0 {
		t.Fatalf("submod(4, 4, 7): got %d, want 0", got)
	}
}
