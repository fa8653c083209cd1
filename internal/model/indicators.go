package model

import "math"

// IndicatorSet holds the derived per-bar series, aligned 1:1 with the source
// bars. Each value is NaN until its window has enough history.
type IndicatorSet struct {
	MA5    []float64
	MA25   []float64
	MA75   []float64
	RSI14  []float64
	VolMA5 []float64
}

// Len returns the number of aligned bars, tolerating a nil set.
func (s *IndicatorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.RSI14)
}

// Last returns the final value of a derived series, or NaN when the series
// is empty.
func Last(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}
