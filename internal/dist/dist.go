// Package dist provides the small set of samplers the entity factories are
// built from. Every function takes an explicit *rand.Rand so callers control
// determinism through seeded sub-streams.
package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"
)

// Weighted samples from a fixed set of choices with relative weights.
type Weighted[T any] struct {
	choices []T
	cum     []float64
	total   float64
}

// NewWeighted builds a sampler over choices with matching weights. Weights
// must be positive and the two slices must have equal, non-zero length.
func NewWeighted[T any](choices []T, weights []float64) (*Weighted[T], error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("weighted: no choices")
	}
	if len(choices) != len(weights) {
		return nil, fmt.Errorf("weighted: %d choices but %d weights", len(choices), len(weights))
	}

	w := &Weighted[T]{
		choices: choices,
		cum:     make([]float64, len(weights)),
	}
	for i, weight := range weights {
		if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("weighted: weight %d is %v, must be positive and finite", i, weight)
		}
		w.total += weight
		w.cum[i] = w.total
	}

	return w, nil
}

// MustWeighted is NewWeighted for package-level samplers built from
// literals. It panics on invalid input.
func MustWeighted[T any](choices []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(choices, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Sample draws one choice according to the configured weights.
func (w *Weighted[T]) Sample(rng *rand.Rand) T {
	target := rng.Float64() * w.total
	i := sort.SearchFloat64s(w.cum, target)
	if i >= len(w.choices) {
		i = len(w.choices) - 1
	}
	return w.choices[i]
}

// Bernoulli returns true with probability p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// UniformInt returns an integer in [lo, hi] inclusive.
func UniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// UniformDuration returns a duration in [lo, hi] at second resolution.
func UniformDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	span := int64((hi - lo) / time.Second)
	return lo + time.Duration(rng.Int64N(span+1))*time.Second
}

// Pick returns a uniformly chosen element. It panics on an empty slice, as
// rand.IntN does on zero.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// Sample returns k distinct elements chosen without replacement. When k
// exceeds the slice length the whole slice is returned in shuffled order.
// The input is never modified.
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	n := len(items)
	if k > n {
		k = n
	}
	out := make([]T, n)
	copy(out, items)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}

// Shuffle permutes items in place.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// OffsetBucket is one range of a bucketed day-offset distribution.
type OffsetBucket struct {
	MinDays int
	MaxDays int
	Weight  float64
}

// BucketedOffset samples day offsets from weighted ranges, e.g. "25% within
// a week, 40% within a month". The draw picks a bucket by weight, then a day
// uniformly inside it.
type BucketedOffset struct {
	buckets *Weighted[OffsetBucket]
}

// NewBucketedOffset builds a sampler over the given buckets.
func NewBucketedOffset(buckets []OffsetBucket) (*BucketedOffset, error) {
	weights := make([]float64, len(buckets))
	for i, b := range buckets {
		if b.MaxDays < b.MinDays {
			return nil, fmt.Errorf("bucketed offset: bucket %d has max %d below min %d", i, b.MaxDays, b.MinDays)
		}
		weights[i] = b.Weight
	}
	w, err := NewWeighted(buckets, weights)
	if err != nil {
		return nil, err
	}
	return &BucketedOffset{buckets: w}, nil
}

// MustBucketedOffset panics on invalid buckets.
func MustBucketedOffset(buckets []OffsetBucket) *BucketedOffset {
	b, err := NewBucketedOffset(buckets)
	if err != nil {
		panic(err)
	}
	return b
}

// SampleDays draws a day offset.
func (b *BucketedOffset) SampleDays(rng *rand.Rand) int {
	bucket := b.buckets.Sample(rng)
	return UniformInt(rng, bucket.MinDays, bucket.MaxDays)
}

// LognormalDuration samples durations from a log-normal distribution
// parameterized by its median. Most draws land near the median with a long
// tail toward Max, where the sample is capped.
type LognormalDuration struct {
	Median time.Duration
	Shape  float64
	Max    time.Duration
}

// Sample draws a duration at second resolution, capped at Max.
func (l LognormalDuration) Sample(rng *rand.Rand) time.Duration {
	mu := math.Log(l.Median.Seconds())
	seconds := math.Exp(mu + l.Shape*rng.NormFloat64())
	d := time.Duration(seconds) * time.Second
	if l.Max > 0 && d > l.Max {
		d = l.Max
	}
	return d
}
