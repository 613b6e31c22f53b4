package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-view", "walk",
		"-scale", "2",
		"-sps", "30",
		"-seed", "7",
		"-p", "101",
		"-a", "47",
		"-b", "22",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.View != "walk" || cfg.Scale != 2 || cfg.SPS != 30 || cfg.Seed != 7 {
		t.Fatalf("viewer flags not applied: %+v", cfg)
	}
	if cfg.P != 101 || cfg.A != 47 || cfg.B != 22 {
		t.Fatalf("generator flags not applied: %+v", cfg)
	}
}

func TestViewOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.P = 10007
	cfg.A = 4321
	cfg.B = 1234
	opts := cfg.ViewOptions()
	if opts["p"] != "10007" || opts["a"] != "4321" || opts["b"] != "1234" {
		t.Fatalf("unexpected option map: %v", opts)
	}
}
