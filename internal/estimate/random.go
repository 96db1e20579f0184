package estimate

import (
	"math/rand/v2"
	"sync"
)

// lockedRandom serializes access to a PCG generator so one source can be
// shared by concurrent requests.
type lockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Float64 returns a uniform value in [0, 1).
func (lr *lockedRandom) Float64() float64 {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.rng.Float64()
}

// NewRandom creates a goroutine-safe random source.
// A zero seed draws the seed from the runtime generator, so results differ
// between processes; any other seed makes the sequence reproducible.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}
