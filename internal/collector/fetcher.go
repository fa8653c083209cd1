package collector

import "github.com/MasatsuguKitadai/TrendChecker/internal/model"

// Fetcher defines the interface for retrieving market data for one ticker.
type Fetcher interface {
	// FetchDailyBars returns up to days of daily history, oldest first.
	FetchDailyBars(ticker string, days int) ([]model.PriceBar, error)
	// FetchName returns a display name for the ticker, falling back to the
	// ticker itself when the provider has none.
	FetchName(ticker string) (string, error)
	Name() string
}
