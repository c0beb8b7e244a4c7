package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrVocabularyExhausted indicates a set-valued field asked for more
// unique elements than its vocabulary provides. This is a defect in the
// vocabulary/cardinality configuration, not a user error.
var ErrVocabularyExhausted = errors.New("vocabulary exhausted")

// sampler wraps the run's seeded random source with the drawing
// primitives every builder shares. All randomness flows through this
// type; nothing touches the global rand state.
type sampler struct {
	r *rand.Rand
}

func newSampler(seed int64) sampler {
	return sampler{r: rand.New(rand.NewSource(seed))}
}

// chance performs an independent Bernoulli draw.
func (s sampler) chance(p float64) bool {
	return s.r.Float64() < p
}

// pick returns a uniformly random element.
func (s sampler) pick(values []string) string {
	return values[s.r.Intn(len(values))]
}

// intBetween draws an integer in [min, max] inclusive.
func (s sampler) intBetween(min, max int) int {
	return min + s.r.Intn(max-min+1)
}

// floatBetween draws a float in [min, max).
func (s sampler) floatBetween(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// money draws a monetary amount in [min, max) rounded to cents.
func (s sampler) money(min, max float64) float64 {
	return round2(s.floatBetween(min, max))
}

// sampleSet draws k unique elements from vocab without replacement,
// with k itself drawn from [min, max]. The vocabulary is copied before
// shuffling so the shared tables stay untouched.
func (s sampler) sampleSet(vocab []string, min, max int) ([]string, error) {
	k := s.intBetween(min, max)
	if k > len(vocab) {
		return nil, fmt.Errorf("%w: need %d unique elements, vocabulary has %d", ErrVocabularyExhausted, k, len(vocab))
	}
	pool := make([]string, len(vocab))
	copy(pool, vocab)
	s.r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:k], nil
}

// round2 rounds to 2 decimal places with standard round-half rules.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ptr returns a pointer to v, the presence marker for optional fields.
func ptr[T any](v T) *T { return &v }
