package strategy

import (
	"math"
	"strconv"
	"time"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// Metrics is the per-holding snapshot fed into the exit evaluator. RSI and
// MA75 are 0 when the series is too short to define them.
type Metrics struct {
	CurrentPrice float64
	RecentHigh   float64
	RSI          float64
	MA75         float64
}

// calDate is a timezone-free calendar date, used so the purchase-date filter
// never depends on time-of-day. Instants are read in UTC so the result does
// not depend on the host timezone either.
type calDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) calDate {
	y, m, d := t.UTC().Date()
	return calDate{y, m, d}
}

func (d calDate) onOrAfter(o calDate) bool {
	if d.year != o.year {
		return d.year > o.year
	}
	if d.month != o.month {
		return d.month > o.month
	}
	return d.day >= o.day
}

// SnapshotMetrics determines the reference recent high for a holding, anchored
// to its purchase date and floored at the purchase price, together with the
// latest close, RSI and MA75.
//
// purchaseTimestamp is the epoch-seconds string the portfolio assigns as the
// record id. When it parses, only bars dated on or after the purchase
// calendar date anchor the high; if that leaves no bars (bought today, feed
// not yet updated) the single most recent bar is used. A missing or
// unparseable timestamp falls back to the whole series.
func SnapshotMetrics(series *model.PriceSeries, ind *model.IndicatorSet, purchasePrice float64, purchaseTimestamp string) Metrics {
	if series.Len() == 0 {
		return Metrics{}
	}

	m := Metrics{CurrentPrice: series.LastClose()}
	if v := model.Last(ind.RSI14); !math.IsNaN(v) {
		m.RSI = v
	}
	if v := model.Last(ind.MA75); !math.IsNaN(v) {
		m.MA75 = v
	}

	bars := series.Bars
	subset := bars
	if ts, err := strconv.ParseFloat(purchaseTimestamp, 64); err == nil {
		sec := int64(ts)
		buyDate := dateOf(time.Unix(sec, int64((ts-float64(sec))*float64(time.Second))))
		var filtered []model.PriceBar
		for _, b := range bars {
			if dateOf(b.Time).onOrAfter(buyDate) {
				filtered = append(filtered, b)
			}
		}
		if len(filtered) > 0 {
			subset = filtered
		} else {
			subset = bars[len(bars)-1:]
		}
	}

	periodHigh := math.NaN()
	for _, b := range subset {
		if math.IsNaN(b.High) {
			continue
		}
		if math.IsNaN(periodHigh) || b.High > periodHigh {
			periodHigh = b.High
		}
	}

	// The high never implies a floor below cost basis.
	if math.IsNaN(periodHigh) {
		m.RecentHigh = math.Max(purchasePrice, m.CurrentPrice)
	} else {
		m.RecentHigh = math.Max(purchasePrice, periodHigh)
	}
	return m
}
