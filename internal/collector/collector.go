package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/MasatsuguKitadai/TrendChecker/internal/calculator"
	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.PriceBar
	Names map[string]string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.PriceBar, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(m.Price, days), nil
}

func (m *MockFetcher) FetchName(ticker string) (string, error) {
	if name, ok := m.Names[ticker]; ok {
		return name, nil
	}
	return ticker, nil
}

// GenerateBars builds a deterministic daily series drifting around basePrice,
// one bar per calendar day ending yesterday.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	start := time.Now().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches a ticker's history and derives its indicator set.
type Collector struct {
	Fetcher Fetcher
	Days    int
}

// NewCollector creates a Collector that pulls up to days of daily history per
// ticker.
func NewCollector(fetcher Fetcher, days int) *Collector {
	return &Collector{Fetcher: fetcher, Days: days}
}

// Collect fetches the series for one ticker, normalizes it to strictly
// ascending unique dates, and computes the indicators.
func (c *Collector) Collect(ticker string) (*model.PriceSeries, *model.IndicatorSet, error) {
	bars, err := c.Fetcher.FetchDailyBars(ticker, c.Days)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch daily bars for %s: %w", ticker, err)
	}
	if len(bars) == 0 {
		return nil, nil, fmt.Errorf("no daily bars for %s", ticker)
	}

	series := &model.PriceSeries{
		Ticker:    ticker,
		Bars:      normalize(bars),
		FetchedAt: time.Now(),
	}
	return series, calculator.Compute(series), nil
}

// normalize sorts bars ascending and drops same-day duplicates, keeping the
// later bar (intraday feeds can repeat today's date).
func normalize(bars []model.PriceBar) []model.PriceBar {
	sorted := make([]model.PriceBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	out := sorted[:0]
	for _, b := range sorted {
		if len(out) > 0 && sameDay(out[len(out)-1].Time, b.Time) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
