package game

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness source for spawning and splitting. Tests inject
// scripted implementations to get deterministic sequences.
type Rand interface {
	// IntRange returns a uniformly distributed integer in [min, max], inclusive.
	IntRange(min, max int) int
}

// pcgRand is the default Rand backed by a seeded PCG generator.
type pcgRand struct {
	r *rand.Rand
}

// ResolveSeed returns seed, or a clock-derived non-zero seed when seed is zero.
func ResolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	if seed = uint64(time.Now().UnixNano()); seed == 0 {
		seed = 1
	}
	return seed
}

// NewRand returns a Rand seeded with seed. A zero seed picks one from the clock.
func NewRand(seed uint64) Rand {
	seed = ResolveSeed(seed)
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min+1)
}
