package runner

import "math/rand"

// Source supplies the world generator's randomness.
type Source interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandSource returns a math/rand generator seeded with seed.
func NewRandSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform integer in [min, max).
func between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min)
}
