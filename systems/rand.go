package systems

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness for spawning and turbulence.
// *rand.Rand satisfies it; tests plug in fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a time-seeded generator
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// randRange returns a uniform value in [min, max)
func randRange(rng Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
