package main

import (
	"fmt"

	"github.com/RNA33/ICG/internal/quality"
	"github.com/RNA33/ICG/pkg/icg"
)

type probeParams struct {
	name string
	p    uint64
	a    uint64
	b    uint64
	seed uint64
}

func main() {
	candidates := []probeParams{
		{name: "facade", p: 15485863, a: 213, b: 64, seed: 4242},
		{name: "small-a", p: 15485863, a: 5, b: 64, seed: 4242},
		{name: "near-p", p: 15485863, a: 15485862, b: 15485831, seed: 4242},
		{name: "mersenne31", p: 2147483647, a: 16807, b: 104729, seed: 4242},
		{name: "tiny", p: 101, a: 47, b: 22, seed: 13},
	}

	fmt.Printf("probing %d parameter combinations\n", len(candidates))
	for _, params := range candidates {
		probe(params)
	}
}

func probe(params probeParams) {
	g := icg.New(params.p, params.a, params.b, params.seed)
	if !g.Valid() {
		fmt.Printf("%s: invalid parameters p=%d a=%d b=%d seed=%d\n",
			params.name, params.p, params.a, params.b, params.seed)
		return
	}

	fmt.Printf("%s: first draws %d %d %d %d\n",
		params.name, g.Next(), g.Next(), g.Next(), g.Next())

	for _, samples := range []int{1 << 12, 1 << 16, 1 << 18} {
		g.Reseed(params.seed)
		m := quality.Collect(g, samples, 64)
		fmt.Printf("  %7d samples: mean=%.4f var=%.4f chi2=%.2f entropy=%.4f corr=%.5f score=%.4f\n",
			samples, m.Mean, m.Variance, m.ChiSquare, m.Entropy, m.SerialCorr, quality.Score(m))
	}
}
