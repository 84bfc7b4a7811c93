package runner

import "math/rand"

// Source is the randomness the runner draws from. Every spawn decision goes
// through it, so a scripted Source makes spawn policy deterministic.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance runs one Bernoulli trial with probability p.
func chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float64() < p
}

// between returns a uniform value in [lo, lo+spread).
func between(src Source, lo, spread float64) float64 {
	return lo + src.Float64()*spread
}
