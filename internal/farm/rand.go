package farm

// Rand is the randomness source the farm draws from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// chance reports true with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
