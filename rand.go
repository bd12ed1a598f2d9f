package generative

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Rand is a seeded source of random numbers for reproducible sketches.
//
// Rand is safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRand returns a Rand seeded with seed. Two Rands created with the same
// seed produce the same sequence.
func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a float in [0, 1).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Random returns an integer in [min, max), as a float64. See Random.
func (r *Rand) Random(min, max float64) float64 {
	return math.Floor(randomIn(r.Float64(), min, max))
}

// RandomFloat returns a float in [min, max).
func (r *Rand) RandomFloat(min, max float64) float64 {
	return randomIn(r.Float64(), min, max)
}
