package interpreter

import (
	"math/rand/v2"
	"time"
)

// RandomSource provides the random bytes for the RND instruction.
type RandomSource interface {
	Byte() uint8
}

// RandomFunc adapts a function to the RandomSource interface.
type RandomFunc func() uint8

// Byte returns the result of calling f.
func (f RandomFunc) Byte() uint8 {
	return f()
}

// seededRandom is a pseudo random source that returns the same sequence for
// the same seed.
type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic random source for the given seed.
func NewRandom(seed uint64) RandomSource {
	return &seededRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

func (r *seededRandom) Byte() uint8 {
	return uint8(r.rng.UintN(256))
}

func newTimeSeededRandom() RandomSource {
	return NewRandom(uint64(time.Now().UnixNano()))
}
