// Package icg implements an inversive congruential pseudorandom number
// generator: next = (a*inverse(current) + b) mod p for a prime modulus p.
//
// The inversive recurrence avoids the lattice structure that linear
// congruential generators exhibit in consecutive tuples, at the cost of
// one modular inversion per draw. It is not suitable for cryptographic
// use.
package icg

// Generator holds the state of one inversive congruential stream.
//
// A Generator is not safe for concurrent use. The package-level
// functions wrap a single shared instance behind a mutex.
type Generator struct {
	p    uint64
	a    uint64
	b    uint64
	seed uint64

	current uint64
	valid   bool

	spare    float64
	hasSpare bool
}

// New returns a generator for the modulus p, multiplier a, offset b and
// starting seed. Construction never fails: out-of-range or non-prime
// parameters produce a generator with Valid() == false whose sampling
// methods all return zero.
func New(p, a, b, seed uint64) *Generator {
	g := &Generator{}
	g.Reparametrize(p, a, b, seed)
	return g
}

// Reparametrize replaces the modulus, parameters and seed in place,
// restarts the stream from the new seed and drops any cached normal
// sample. It reports whether the new parameter set is valid.
func (g *Generator) Reparametrize(p, a, b, seed uint64) bool {
	g.p, g.a, g.b, g.seed = p, a, b, seed
	g.current = seed
	g.valid = paramsValid(p, a, b, seed)
	g.spare = 0
	g.hasSpare = false
	return g.valid
}

// Reseed restarts the stream from a new seed, keeping p, a and b. Any
// cached normal sample is dropped. It reports whether the generator is
// valid with the new seed.
func (g *Generator) Reseed(seed uint64) bool {
	g.seed = seed
	g.current = seed
	g.valid = paramsValid(g.p, g.a, g.b, seed)
	g.spare = 0
	g.hasSpare = false
	return g.valid
}

func paramsValid(p, a, b, seed uint64) bool {
	return p > 3 && a < p && b < p && seed < p && isPrime(p)
}

// Next advances the stream and returns the next raw value, in [0, p).
// An invalid generator returns 0.
func (g *Generator) Next() uint64 {
	if !g.valid {
		return 0
	}
	if g.current == 0 {
		// Zero has no inverse; the recurrence restarts from the offset.
		g.current = g.b
		return g.current
	}
	inv := modInverse(g.current, g.p)
	g.current = addmod(mulmod(g.a, inv, g.p), g.b, g.p)
	return g.current
}

// Float64 returns a pseudorandom value in [0, 1), or 0 when the
// generator is invalid.
func (g *Generator) Float64() float64 {
	if !g.valid {
		return 0
	}
	return float64(g.Next()) / float64(g.p)
}

// Uint64n returns a pseudorandom integer in [0, n). The value is derived
// from Float64, so the distribution over the range is only as fine as
// the underlying modulus allows.
func (g *Generator) Uint64n(n uint64) uint64 {
	return uint64(g.Float64() * float64(n))
}

// Uniform returns a pseudorandom value drawn uniformly from the interval
// between a and b. The bounds may be given in either order; the result
// lies in [min(a,b), max(a,b)). Equal bounds return that bound, and an
// invalid generator returns 0.
func (g *Generator) Uniform(a, b float64) float64 {
	if !g.valid {
		return 0
	}
	if a == b {
		return a
	}
	if b < a {
		a, b = b, a
	}
	return g.Float64()*(b-a) + a
}

// Valid reports whether the generator's parameters admit well-defined
// output.
func (g *Generator) Valid() bool { return g.valid }

// P returns the prime modulus.
func (g *Generator) P() uint64 { return g.p }

// A returns the multiplier parameter.
func (g *Generator) A() uint64 { return g.a }

// B returns the offset parameter.
func (g *Generator) B() uint64 { return g.b }
