package quality

import (
	"math"

	"github.com/RNA33/ICG/pkg/icg"
)

// Metrics summarizes the statistical behavior of a generator's uniform
// output stream.
type Metrics struct {
	Samples int
	Buckets int

	Mean     float64
	Variance float64

	// ChiSquare measures bucket uniformity against the ideal count of
	// Samples/Buckets; for a good stream it stays near Buckets-1.
	ChiSquare float64

	// Entropy is the Shannon entropy of the bucket distribution in bits;
	// the ideal is log2(Buckets).
	Entropy float64

	// SerialCorr is the lag-1 autocorrelation of the stream; the ideal
	// is 0.
	SerialCorr float64
}

// Collect draws samples from the generator and fills the statistical
// summary. An invalid generator emits the degenerate all-zero stream and
// scores accordingly.
func Collect(g *icg.Generator, samples, buckets int) Metrics {
	if samples <= 0 {
		samples = 1 << 16
	}
	if buckets <= 1 {
		buckets = 64
	}
	counts := make([]int, buckets)
	var sum, sumSq, lagSum, prev float64
	for i := 0; i < samples; i++ {
		v := g.Float64()
		sum += v
		sumSq += v * v
		idx := int(v * float64(buckets))
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
		if i > 0 {
			lagSum += prev * v
		}
		prev = v
	}

	n := float64(samples)
	m := Metrics{Samples: samples, Buckets: buckets}
	m.Mean = sum / n
	m.Variance = sumSq/n - m.Mean*m.Mean

	expected := n / float64(buckets)
	for _, c := range counts {
		diff := float64(c) - expected
		m.ChiSquare += diff * diff / expected
		if c > 0 {
			p := float64(c) / n
			m.Entropy -= p * math.Log2(p)
		}
	}

	if samples > 1 && m.Variance > 0 {
		lagMean := lagSum / float64(samples-1)
		m.SerialCorr = (lagMean - m.Mean*m.Mean) / m.Variance
	}
	return m
}

// Score folds the metrics into a single comparable figure; 1 is ideal
// and degenerate streams land far below 0. Entropy carries the score,
// correlation and mean bias subtract from it, and only clearly abnormal
// chi-square values are penalized so ordinary sampling noise does not
// reorder close candidates.
func Score(m Metrics) float64 {
	if m.Buckets <= 1 || m.Samples == 0 {
		return 0
	}
	score := m.Entropy / math.Log2(float64(m.Buckets))
	score -= math.Abs(m.SerialCorr)
	score -= math.Abs(m.Mean-0.5) * 4

	df := float64(m.Buckets - 1)
	excess := (m.ChiSquare - df) / math.Sqrt(2*df)
	if excess > 3 {
		score -= (excess - 3) * 0.01
	}
	return score
}
