package icg

import "math/bits"

// modInverse returns the multiplicative inverse of y modulo p, computed
// with the extended Euclidean algorithm. It returns 0 for y == 0 and for
// y >= p, and 0 when no inverse exists (possible only for composite p).
func modInverse(y, p uint64) uint64 {
	if y == 0 || y >= p {
		return 0
	}
	if y == 1 {
		return 1
	}
	// r2/r1 walk the remainder chain of (p, y); x2/x1 track the Bezout
	// coefficient of y, kept reduced into [0, p) at every step so the
	// arithmetic never leaves uint64 range.
	r2, r1 := p, y
	var x2, x1 uint64 = 0, 1
	for r1 > 1 {
		q := r2 / r1
		r2, r1 = r1, r2-q*r1
		x2, x1 = x1, submod(x2, mulmod(q, x1, p), p)
	}
	if r1 != 1 {
		return 0
	}
	return x1
}

// mulmod returns (x * y) mod p through a 128-bit intermediate product.
// Both operands must already be reduced below p, which bounds the high
// word of the product below p as bits.Div64 requires.
func mulmod(x, y, p uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}

// addmod returns (x + y) mod p for operands already reduced below p. The
// carry from bits.Add64 covers moduli above 1<<63, where the raw sum can
// wrap.
func addmod(x, y, p uint64) uint64 {
	s, carry := bits.Add64(x, y, 0)
	if carry != 0 || s >= p {
		s -= p
	}
	return s
}

// submod returns (x - y) mod p for operands already reduced below p.
func submod(x, y, p uint64) uint64 {
	if x >= y {
		return x - y
	}
	return x + (p - y)
}
