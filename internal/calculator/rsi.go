package calculator

import "math"

// epsilon keeps the RS ratio finite when the trailing loss mean is zero.
const epsilon = 1e-10

// RollingRSI computes a simple rolling-average RSI: gain and loss are plain
// trailing means over the last period close-to-close diffs.
//
// This is intentionally not Wilder's smoothed RSI. The exit and entry rules
// were tuned against this variant and its thresholds (35 oversold) assume it;
// do not "fix" it to the exponential form.
func RollingRSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	// diff is undefined at index 0, so gains/losses start at index 1 and the
	// first full window closes at index period.
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains[i] = diff
		} else {
			losses[i] = -diff
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i >= period {
			gain := gainSum / float64(period)
			loss := lossSum / float64(period)
			out[i] = 100 - 100/(1+gain/(loss+epsilon))
		}
	}
	return out
}
