package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/RNA33/ICG/internal/quality"
	"github.com/RNA33/ICG/pkg/icg"
)

func main() {
	p := flag.Uint64("p", icg.DefaultP, "generator modulus (prime), fixed during the search")
	a := flag.Uint64("a", icg.DefaultA, "starting multiplier")
	b := flag.Uint64("b", icg.DefaultB, "starting offset")
	seed := flag.Uint64("seed", 1337, "stream seed used for every evaluation")
	samples := flag.Int("samples", 1<<18, "draws per candidate evaluation")
	buckets := flag.Int("buckets", 64, "histogram buckets")
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate the starting parameters")
	flag.Parse()

	if !icg.New(*p, *a, *b, *seed).Valid() {
		log.Fatalf("invalid parameters: p=%d a=%d b=%d seed=%d (p must be prime and above 3, the rest below p)", *p, *a, *b, *seed)
	}

	cfg := quality.SearchConfig{
		P:       *p,
		Seed:    *seed,
		Samples: *samples,
		Buckets: *buckets,
		Passes:  *passes,
		Workers: *workers,
	}
	start := quality.Candidate{A: *a, B: *b}

	baseline := quality.Evaluate(cfg, start)
	fmt.Printf("Baseline: score %.4f (entropy %.4f bits, chi-square %.2f, serial corr %.5f, mean %.6f)\n",
		baseline.Score, baseline.Metrics.Entropy, baseline.Metrics.ChiSquare, baseline.Metrics.SerialCorr, baseline.Metrics.Mean)

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(start)
		return
	}

	best, result, trace := quality.Search(cfg, start)

	fmt.Printf("\nBest found: score %.4f (entropy %.4f bits, chi-square %.2f, serial corr %.5f, mean %.6f)\n",
		result.Score, result.Metrics.Entropy, result.Metrics.ChiSquare, result.Metrics.SerialCorr, result.Metrics.Mean)
	printParams(best)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> score %.4f (entropy %.4f, corr %.5f)\n",
				rec.Pass, rec.Parameter, rec.Value, rec.Result.Score, rec.Result.Metrics.Entropy, rec.Result.Metrics.SerialCorr)
		}
	}
}

func printParams(c quality.Candidate) {
	fmt.Println("Parameters:")
	fmt.Printf("  a=%d\n", c.A)
	fmt.Printf("  b=%d\n", c.B)
}
