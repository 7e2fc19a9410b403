package study

import "math/rand/v2"

// Random is the source of randomness used by the scheduler.
type Random interface {
	// UniformInt returns a uniformly distributed integer in [lo, hi].
	UniformInt(lo, hi int) int
	// Shuffle pseudo-randomly permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a Random backed by a PCG generator. The same seed
// always produces the same sequence.
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) UniformInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + p.r.IntN(hi-lo+1)
}

func (p *pcgRandom) Shuffle(n int, swap func(i, j int)) {
	p.r.Shuffle(n, swap)
}
