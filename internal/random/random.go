package random

import "math/rand"

// Source supplies the randomness the bank consumes: card digits and the
// bounded market drift. Injected for determinism in tests.
type Source interface {
	// Digit returns a uniformly distributed digit in [0, 9].
	Digit() int
	// Uniform returns a uniformly distributed float in [lo, hi).
	Uniform(lo, hi float64) float64
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Source backed by math/rand with the given seed.
func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Digit() int { return s.r.Intn(10) }

func (s *seeded) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
