package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
		min    float64
		max    float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Min(), c.min)
		is.Equal(s.Max(), c.max)
	}
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	scores := []float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}
	all := &Statistic{}
	a, b := &Statistic{}, &Statistic{}
	for i, sc := range scores {
		all.Push(sc)
		if i < 4 {
			a.Push(sc)
		} else {
			b.Push(sc)
		}
	}
	empty := &Statistic{}
	empty.Merge(a)
	empty.Merge(b)
	a.Merge(b)
	for _, s := range []*Statistic{a, empty} {
		is.Equal(s.Iterations(), all.Iterations())
		is.True(FuzzyEqual(s.Mean(), all.Mean()))
		is.True(FuzzyEqual(s.Stdev(), all.Stdev()))
		is.Equal(s.Min(), 10.0)
		is.Equal(s.Max(), 124.0)
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqualTol(ZVal(95), 1.959964, 1e-5))
	is.True(FuzzyEqualTol(ZVal(99), 2.575829, 1e-5))

	s := &Statistic{}
	for _, v := range []float64{9, 9, 9} {
		s.Push(v)
	}
	is.Equal(s.ConfidenceInterval(99), 0.0)
}
