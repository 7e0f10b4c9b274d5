package unit

import "math/rand"

// RandomSource is the capability the unit draws combat rolls, dodge
// targets and idle decisions from. Injecting it keeps every probabilistic
// outcome reproducible under test.
type RandomSource interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type mathRandSource struct {
	r *rand.Rand
}

// NewRandomSource returns a RandomSource backed by math/rand with the
// given seed.
func NewRandomSource(seed int64) RandomSource {
	return mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (s mathRandSource) IntN(n int) int {
	return s.r.Intn(n)
}

func (s mathRandSource) Float64() float64 {
	return s.r.Float64()
}
