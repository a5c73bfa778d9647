package classify

import "math/rand"

// Win estimate bounds, inclusive
const (
	estimateMin = 50
	estimateMax = 95
)

// Estimator produces the "win percentage" shown next to an analysis result.
// The number is a uniformly distributed random value in [50,95] that ignores
// the query and the matched category entirely: it is a cosmetic placeholder,
// not a legal prediction, and callers must present it as such. Output is
// non-deterministic unless the caller seeds the source.
type Estimator struct {
	rng *rand.Rand
}

// NewEstimator creates an estimator drawing from the given source
func NewEstimator(src rand.Source) *Estimator {
	return &Estimator{rng: rand.New(src)}
}

// Estimate returns a random integer in [50,95]
func (e *Estimator) Estimate() int {
	return estimateMin + e.rng.Intn(estimateMax-estimateMin+1)
}
