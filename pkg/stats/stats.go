// Package stats provides the descriptive statistics used to judge
// whether an article count is out of line with a diary's history.
//
// All functions operate on plain integer samples and define their own
// behavior on insufficient data, so callers never need to pre-check
// lengths.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(data []int) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0
	for _, v := range data {
		sum += v
	}
	return float64(sum) / float64(len(data))
}

// SampleStdDev returns the sample standard deviation (Bessel's
// correction, divide by n-1), or 0 for samples of fewer than two values.
func SampleStdDev(data []int) float64 {
	if len(data) < 2 {
		return 0
	}
	mean := Mean(data)
	sumSq := 0.0
	for _, v := range data {
		diff := float64(v) - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(data)-1))
}

// CoefficientOfVariation returns SampleStdDev/Mean, a unit-free measure
// of relative dispersion. It returns 0 when the sample has fewer than
// two values or a zero mean.
func CoefficientOfVariation(data []int) float64 {
	if len(data) < 2 {
		return 0
	}
	mean := Mean(data)
	if mean == 0 {
		return 0
	}
	return SampleStdDev(data) / mean
}

// Quartiles returns the 25th and 75th percentiles and their spread.
// Percentiles use linear interpolation between closest ranks
// (index = p/100 * (n-1)), so Quartiles([1,2,3,4]) -> (1.75, 3.25, 1.5).
// Samples of fewer than four values yield (0, 0, 0).
func Quartiles(data []int) (q1, q3, iqr float64) {
	if len(data) < 4 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(data))
	for i, v := range data {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	q1 = percentile(sorted, 25)
	q3 = percentile(sorted, 75)
	return q1, q3, q3 - q1
}

// percentile computes the p-th percentile of sorted data, 0 <= p <= 100.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// ModeMatch reports whether count equals the most frequent value in the
// sample, and what that value is. Frequency ties are broken by the first
// value reaching the maximum frequency, in input order. An empty sample
// yields (false, 0).
func ModeMatch(data []int, count int) (matches bool, mode int) {
	if len(data) == 0 {
		return false, 0
	}

	freq := make(map[int]int, len(data))
	for _, v := range data {
		freq[v]++
	}

	best := -1
	for _, v := range data {
		if freq[v] > best {
			best = freq[v]
			mode = v
		}
	}
	return count == mode, mode
}
