package model

// ExitResult is the protective-order recommendation for one holding.
type ExitResult struct {
	OrderPrice  float64 // price to place the stop order at
	RawLine     float64 // highest candidate floor before the emergency override
	Label       string
	IsEmergency bool
	ProfitPct   float64
}

// EntryResult is the buy-attractiveness score for one watched ticker.
// Reasons lists the triggered factors in evaluation order.
type EntryResult struct {
	Score   int
	Reasons []string
}

// BuySignal reports whether the score clears the conventional buy threshold.
func (r EntryResult) BuySignal() bool {
	return r.Score >= 50
}
