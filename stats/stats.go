// Package stats keeps running statistics over self-play games.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance, plus the extremes, of a series
// such as game lengths or nodes searched per move.
type Statistic struct {
	totalIterations int
	last            float64
	min, max        float64

	// For Welford's algorithm:
	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
		s.min, s.max = val, val
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
		s.min = math.Min(s.min, val)
		s.max = math.Max(s.max, val)
	}
}

// Merge folds another statistic into this one, as if every value pushed to
// o had been pushed here. Last is not changed.
func (s *Statistic) Merge(o *Statistic) {
	if o.totalIterations == 0 {
		return
	}
	if s.totalIterations == 0 {
		last := s.last
		*s = *o
		s.last = last
		return
	}
	n1, n2 := float64(s.totalIterations), float64(o.totalIterations)
	delta := o.newM - s.newM
	mean := s.newM + delta*n2/(n1+n2)
	m2 := s.newS + o.newS + delta*delta*n1*n2/(n1+n2)
	s.totalIterations += o.totalIterations
	s.oldM, s.newM = mean, mean
	s.oldS, s.newS = m2, m2
	s.min = math.Min(s.min, o.min)
	s.max = math.Max(s.max, o.max)
}

func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0.0
	}
	return s.newS / float64(s.totalIterations-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

// StandardError returns the standard error of the statistic.
func (s *Statistic) StandardError() float64 {
	if s.totalIterations == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.totalIterations))
}

// ConfidenceInterval returns the half-width of the two-tailed interval
// around the mean, for a confidence level given in percent.
func (s *Statistic) ConfidenceInterval(pct float64) float64 {
	return ZVal(pct) * s.StandardError()
}

func (s *Statistic) Iterations() int {
	return s.totalIterations
}
