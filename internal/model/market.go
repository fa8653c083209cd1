package model

import "time"

// PriceBar represents a single daily OHLCV candle.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the daily history for one ticker, strictly ascending by
// date with unique dates.
type PriceSeries struct {
	Ticker    string
	Name      string
	Bars      []PriceBar
	FetchedAt time.Time
}

// Len returns the number of bars, tolerating a nil series.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Closes extracts the closing prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, s.Len())
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts the traded volumes in bar order.
func (s *PriceSeries) Volumes() []float64 {
	volumes := make([]float64, s.Len())
	for i, b := range s.Bars {
		volumes[i] = b.Volume
	}
	return volumes
}

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
