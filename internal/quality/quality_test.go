package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RNA33/ICG/pkg/icg"
)

func TestCollectGoodGenerator(t *testing.T) {
	g := icg.New(15485863, 213, 64, 4321)
	require.True(t, g.Valid())

	m := Collect(g, 1<<16, 64)
	assert.Equal(t, 1<<16, m.Samples)
	assert.InDelta(t, 0.5, m.Mean, 0.01)
	assert.InDelta(t, 1.0/12.0, m.Variance, 0.005)
	assert.InDelta(t, math.Log2(64), m.Entropy, 0.02)
	assert.InDelta(t, 0, m.SerialCorr, 0.02)
	assert.Less(t, m.ChiSquare, 120.0)
	assert.Greater(t, Score(m), 0.9)
}

func TestCollectDegenerateGenerator(t *testing.T) {
	g := icg.New(4, 1, 2, 3)
	require.False(t, g.Valid())

	m := Collect(g, 4096, 16)
	assert.Zero(t, m.Mean)
	assert.Zero(t, m.Variance)
	assert.Zero(t, m.Entropy)
	assert.Less(t, Score(m), 0.0)
}

func TestCollectDefaultsSampleCount(t *testing.T) {
	g := icg.New(10007, 4321, 1234, 1)
	m := Collect(g, 0, 0)
	assert.Equal(t, 1<<16, m.Samples)
	assert.Equal(t, 64, m.Buckets)
}

func TestScoreOrdersStreams(t *testing.T) {
	good := Evaluate(SearchConfig{P: 15485863, Seed: 4321, Samples: 1 << 14, Buckets: 32}, Candidate{A: 213, B: 64})
	// A zero multiplier collapses the stream to the constant offset.
	flat := Evaluate(SearchConfig{P: 15485863, Seed: 4321, Samples: 1 << 14, Buckets: 32}, Candidate{A: 0, B: 64})
	assert.Greater(t, good.Score, flat.Score)
}

func TestSearchImprovesFromDegenerateStart(t *testing.T) {
	cfg := SearchConfig{
		P:       10007,
		Seed:    5,
		Samples: 1 << 13,
		Buckets: 32,
		Passes:  2,
		Workers: 4,
	}
	start := Candidate{A: 0, B: 1}

	baseline := Evaluate(cfg, start)
	best, result, trace := Search(cfg, start)

	require.NotEmpty(t, trace)
	assert.Equal(t, "baseline", trace[0].Parameter)
	assert.Greater(t, result.Score, baseline.Score)
	assert.NotEqual(t, start, best)
	assert.Less(t, best.A, cfg.P)
	assert.Less(t, best.B, cfg.P)
}

func TestSearchIsDeterministic(t *testing.T) {
	cfg := SearchConfig{
		P:       10007,
		Seed:    9,
		Samples: 1 << 12,
		Buckets: 32,
		Passes:  1,
		Workers: 4,
	}
	start := Candidate{A: 4321, B: 1234}
	best1, res1, _ := Search(cfg, start)
	best2, res2, _ := Search(cfg, start)
	assert.Equal(t, best1, best2)
	assert.Equal(t, res1.Score, res2.Score)
}

func TestNeighborValuesStayInRange(t *testing.T) {
	for _, current := range []uint64{0, 1, 2, 5000, 10006} {
		for _, v := range neighborValues(10007, current) {
			require.NotZero(t, v)
			require.Less(t, v, uint64(10007))
			require.NotEqual(t, current, v)
		}
	}
}
