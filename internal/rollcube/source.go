package rollcube

import "math/rand"

// Source is the random source used to populate the grid.
type Source interface {
	// Seed resets the source to a deterministic state.
	Seed(seed int64)
	// UniformInt returns a uniformly distributed value in [low, high].
	UniformInt(low, high int) int
}

// randSource adapts math/rand to Source.
type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns a Source backed by math/rand seeded with seed.
func NewRandSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Seed(seed int64) {
	s.rng.Seed(seed)
}

func (s *randSource) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.rng.Intn(high-low+1)
}
