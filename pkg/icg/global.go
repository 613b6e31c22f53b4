package icg

import (
	"sync"
	"time"
)

// DefaultP, DefaultA and DefaultB parametrize the shared package-level
// generator. DefaultP is the millionth prime; the seed is taken from the
// wall clock at first use, so runs differ unless Reseed is called.
const (
	DefaultP uint64 = 15485863
	DefaultA uint64 = 213
	DefaultB uint64 = 64
)

// The functions below mirror Generator's sampling methods on a single
// process-wide instance created at first use. Unlike Generator methods
// they are safe for concurrent use.
var (
	defaultOnce sync.Once
	defaultMu   sync.Mutex
	defaultGen  *Generator
)

func defaultGenerator() *Generator {
	defaultOnce.Do(func() {
		defaultGen = New(DefaultP, DefaultA, DefaultB, uint64(time.Now().UnixNano())%DefaultP)
	})
	return defaultGen
}

// Reseed restarts the shared generator from the given seed, for
// reproducible runs. It reports whether the generator remains valid;
// seeds at or above DefaultP leave it invalid until reseeded in range.
func Reseed(seed uint64) bool {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Reseed(seed)
}

// Next returns the next raw value from the shared generator, in
// [0, DefaultP).
func Next() uint64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Next()
}

// Float64 returns a value in [0, 1) from the shared generator.
func Float64() float64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Float64()
}

// Uint64n returns an integer in [0, n) from the shared generator.
func Uint64n(n uint64) uint64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Uint64n(n)
}

// Uniform returns a value from the interval between a and b, drawn from
// the shared generator.
func Uniform(a, b float64) float64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Uniform(a, b)
}

// NormFloat64 returns a standard normal value from the shared generator.
func NormFloat64() float64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.NormFloat64()
}

// Normal returns a normal value with the given mean and variance, drawn
// from the shared generator.
func Normal(mean, variance float64) float64 {
	g := defaultGenerator()
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return g.Normal(mean, variance)
}
