package icg

import "math"

// epsilon is the rejection floor for the Box-Muller radius term; radii
// this close to the origin would blow up the -2*ln(q)/q factor.
const epsilon = 0.0001

// NormFloat64 returns a standard normally distributed value (mean 0,
// variance 1), or 0 when the generator is invalid.
//
// The polar Box-Muller transform produces samples in pairs; the second
// value is cached and served by the following call. The rejection loop
// carries no iteration bound: it terminates with probability one for any
// reasonable parameter set, but a degenerate stream (such as a fixed
// point of the raw recurrence that always lands outside the unit disc)
// would spin forever.
func (g *Generator) NormFloat64() float64 {
	if !g.valid {
		return 0
	}
	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}
	var u1, u2, q float64
	for {
		u1 = g.Uniform(-1, 1)
		u2 = g.Uniform(-1, 1)
		q = u1*u1 + u2*u2
		if q > epsilon && q <= 1 {
			break
		}
	}
	r := math.Sqrt(-2 * math.Log(q) / q)
	g.spare = r * u2
	g.hasSpare = true
	return r * u1
}

// Normal returns a normally distributed value with the given mean and
// variance, or 0 when the generator is invalid. A negative variance
// yields NaN.
func (g *Generator) Normal(mean, variance float64) float64 {
	if !g.valid {
		return 0
	}
	return math.Sqrt(variance)*g.NormFloat64() + mean
}
