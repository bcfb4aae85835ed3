package statistics

import (
	"math"
	"sort"
)

// Sample accumulates observations and answers the summary questions the
// simulator asks about them. Running sums keep Mean and Variance O(1); the
// raw values are retained for order statistics.
type Sample struct {
	n    int
	sum  float64
	sum2 float64 // sum of squares for variance calculation
	min  float64
	max  float64

	values []float64
}

// Add incorporates a new observation
func (s *Sample) Add(v float64) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if s.n == 0 || v > s.max {
		s.max = v
	}
	s.n++
	s.sum += v
	s.sum2 += v * v
	s.values = append(s.values, v)
}

// N returns the number of observations
func (s *Sample) N() int {
	return s.n
}

// Sum returns the total of all observations
func (s *Sample) Sum() float64 {
	return s.sum
}

// Mean returns the arithmetic mean of all observations
func (s *Sample) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

// Min returns the smallest observation
func (s *Sample) Min() float64 {
	return s.min
}

// Max returns the largest observation
func (s *Sample) Max() float64 {
	return s.max
}

// Variance returns the sample variance of all observations
func (s *Sample) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(s.n)*mean*mean) / float64(s.n-1)
}

// StdDev returns the sample standard deviation of all observations
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.n == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.n))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of all observations
func (s *Sample) Median() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated between observations.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Sample) sorted() []float64 {
	sorted := make([]float64, len(s.values))
	copy(sorted, s.values)
	sort.Float64s(sorted)
	return sorted
}
