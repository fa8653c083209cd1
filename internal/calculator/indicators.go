package calculator

import "github.com/MasatsuguKitadai/TrendChecker/internal/model"

// Indicator window sizes. MA75 exists for the long-mode harvest floor and is
// the reason the collector pulls two years of history.
const (
	WindowMA5    = 5
	WindowMA25   = 25
	WindowMA75   = 75
	WindowRSI    = 14
	WindowVolMA5 = 5
)

// Compute derives the full indicator set for a price series. The result is
// aligned 1:1 with the input bars. A nil or empty series yields an empty set,
// never an error.
func Compute(series *model.PriceSeries) *model.IndicatorSet {
	if series.Len() == 0 {
		return &model.IndicatorSet{}
	}
	closes := series.Closes()
	return &model.IndicatorSet{
		MA5:    RollingMean(closes, WindowMA5),
		MA25:   RollingMean(closes, WindowMA25),
		MA75:   RollingMean(closes, WindowMA75),
		RSI14:  RollingRSI(closes, WindowRSI),
		VolMA5: RollingMean(series.Volumes(), WindowVolMA5),
	}
}
