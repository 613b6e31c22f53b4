package preset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"

	"github.com/RNA33/ICG/pkg/icg"
)

// Preset names one generator parameter set. A zero Seed means "derive":
// tools substitute a stable per-name seed via DeriveSeed.
type Preset struct {
	P    uint64 `toml:"p"`
	A    uint64 `toml:"a"`
	B    uint64 `toml:"b"`
	Seed uint64 `toml:"seed"`
}

// File is the on-disk layout of a preset collection.
type File struct {
	Presets map[string]Preset `toml:"presets"`
}

// Builtin returns the presets compiled into the binaries. The default
// entry carries the package-level generator's parameters.
func Builtin() map[string]Preset {
	return map[string]Preset{
		"default":    {P: icg.DefaultP, A: icg.DefaultA, B: icg.DefaultB},
		"small":      {P: 10007, A: 4321, B: 1234},
		"tiny":       {P: 101, A: 47, B: 22},
		"mersenne31": {P: 2147483647, A: 16807, B: 104729},
	}
}

// Load reads a TOML preset file and merges it over the built-in set;
// file entries win on name collisions. An empty path returns just the
// built-ins.
func Load(path string) (map[string]Preset, error) {
	merged := Builtin()
	if path == "" {
		return merged, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, p := range f.Presets {
		merged[name] = p
	}
	return merged, nil
}

// Validate reports why the preset cannot drive a generator, or nil.
func (p Preset) Validate() error {
	if p.P <= 3 {
		return fmt.Errorf("modulus %d: must be a prime greater than 3", p.P)
	}
	if p.A >= p.P {
		return fmt.Errorf("multiplier %d: must be below the modulus %d", p.A, p.P)
	}
	if p.B >= p.P {
		return fmt.Errorf("offset %d: must be below the modulus %d", p.B, p.P)
	}
	if p.Seed >= p.P {
		return fmt.Errorf("seed %d: must be below the modulus %d", p.Seed, p.P)
	}
	// The range checks above passed, so a rejected probe can only mean a
	// composite modulus.
	if !icg.New(p.P, p.A, p.B, p.Seed).Valid() {
		return fmt.Errorf("modulus %d: not prime", p.P)
	}
	return nil
}

// Generator builds a generator from the preset, deriving a stable seed
// from the name when the preset does not pin one.
func (p Preset) Generator(name string) *icg.Generator {
	seed := p.Seed
	if seed == 0 {
		seed = DeriveSeed(name, p.P)
	}
	return icg.New(p.P, p.A, p.B, seed)
}

// DeriveSeed hashes the name into a stable seed below the modulus, so
// unseeded presets reproduce across runs and differ across names.
func DeriveSeed(name string, p uint64) uint64 {
	if p == 0 {
		return 0
	}
	return xxhash.Sum64String(name) % p
}
