package generator

import (
	"math"
	"math/rand"
	"time"
)

// weightedBool returns true with probability p. Skewed flags (90% active
// restaurants, 20% promoted orders) all route through here so the bias is in
// one place and testable with a seeded source.
func weightedBool(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// pick returns a uniformly chosen element of items.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// amount samples uniformly in [min, max] rounded to 2 decimal places.
func amount(rng *rand.Rand, min, max float64) float64 {
	return round2(min + rng.Float64()*(max-min))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// timeBetween samples a uniform instant in [start, end).
func timeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}

// ratingBetween samples an integer rating in [min, max].
func ratingBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
