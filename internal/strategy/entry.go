package strategy

import "github.com/MasatsuguKitadai/TrendChecker/internal/model"

// Entry scoring weights and thresholds. The triggers are independent and
// additive; callers treat a total of 50 or more as a buy signal.
const (
	oversoldRSI      = 35.0
	scoreOversold    = 50
	scoreGoldenCross = 50
	volumeSurgeRatio = 1.5
	scoreVolumeSurge = 20
)

// ScoreEntry rates a watched ticker's buy attractiveness from its latest
// indicators. Undefined indicator values (NaN) simply fail their comparisons
// and contribute nothing. A nil or empty series scores (0, no reasons).
func ScoreEntry(series *model.PriceSeries, ind *model.IndicatorSet) model.EntryResult {
	n := series.Len()
	if n == 0 || ind.Len() != n {
		return model.EntryResult{}
	}

	res := model.EntryResult{}

	if rsi := ind.RSI14[n-1]; rsi < oversoldRSI {
		res.Score += scoreOversold
		res.Reasons = append(res.Reasons, "RSI oversold")
	}

	// Golden cross needs the previous bar's averages.
	if n >= 2 {
		ma5, ma25 := ind.MA5[n-1], ind.MA25[n-1]
		prev5, prev25 := ind.MA5[n-2], ind.MA25[n-2]
		if ma5 > ma25 && prev5 <= prev25 {
			res.Score += scoreGoldenCross
			res.Reasons = append(res.Reasons, "golden cross")
		}
	}

	if volMA := ind.VolMA5[n-1]; volMA > 0 && series.Bars[n-1].Volume > volMA*volumeSurgeRatio {
		res.Score += scoreVolumeSurge
		res.Reasons = append(res.Reasons, "volume surge")
	}

	return res
}
