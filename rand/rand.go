package rand

import (
	mrand "math/rand"

	"github.com/pkg/errors"
	"github.com/seehuhn/mt19937"
)

// A Generator is a privately owned, explicitly seeded source of uniform and
// standard normal draws. It is backed by the 64-bit Mersenne twister and is
// not safe for concurrent use: give every chain its own Generator.
type Generator struct {
	mt  *mt19937.MT19937
	rnd *mrand.Rand
}

// NewGenerator returns a Generator seeded with the given value
func NewGenerator(seed int64) (*Generator, error) {
	mt := mt19937.New()
	mt.Seed(seed)
	return newGenerator(mt), nil
}

// NewGeneratorSlice returns a Generator seeded from a key (init_by_array in
// the MT19937-64 reference code)
func NewGeneratorSlice(key []uint64) (*Generator, error) {
	if len(key) < 1 {
		return nil, errors.Errorf("Seed key must have at least one entry")
	}

	mt := mt19937.New()
	mt.SeedFromSlice(key)
	return newGenerator(mt), nil
}

func newGenerator(mt *mt19937.MT19937) *Generator {
	return &Generator{
		mt:  mt,
		rnd: mrand.New(mt),
	}
}

// Int63 provides the same interface as Go's math/rand
func (g *Generator) Int63() int64 {
	return g.mt.Int63()
}

// Int63n is a copy of the current Go code
func (g *Generator) Int63n(n int64) int64 {
	if n <= 0 {
		panic("invalid argument to Int63n")
	}

	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Int63() & (n - 1)
	}

	max := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := g.Int63()
	for v > max {
		v = g.Int63()
	}

	return v % n
}

// Float64 returns a uniform draw in [0, 1). We use 53 random bits so every
// value is exactly representable and 1.0 can never come back.
func (g *Generator) Float64() float64 {
	return float64(g.Int63n(1<<53)) / (1 << 53)
}

// NormFloat64 returns a standard normal draw (mean 0, stddev 1). The
// ziggurat from math/rand is driven by our twister, so the stream is fully
// determined by the seed.
func (g *Generator) NormFloat64() float64 {
	return g.rnd.NormFloat64()
}
