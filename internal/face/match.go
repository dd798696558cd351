// Package face compares face descriptors.
package face

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
)

// DefaultTolerance is the largest Euclidean distance still treated as the same person.
const DefaultTolerance = 0.6

// Distance returns the Euclidean distance between two descriptors.
// Descriptors of different or zero length are infinitely far apart.
func Distance(a, b entity.Descriptor) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}

	return floats.Distance(widen(a), widen(b), 2)
}

// Matches reports whether candidate belongs to the same person as reference.
// A negative tolerance selects DefaultTolerance.
func Matches(reference, candidate entity.Descriptor, tolerance float64) bool {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}

	return Distance(reference, candidate) <= tolerance
}

// Valid reports whether every component of d is finite.
func Valid(d entity.Descriptor) bool {
	if len(d) == 0 {
		return false
	}

	for _, v := range d {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

func widen(d entity.Descriptor) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = float64(v)
	}

	return out
}
