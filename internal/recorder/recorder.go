package recorder

import "github.com/MasatsuguKitadai/TrendChecker/internal/model"

// ExitReview holds one evaluated holding for the history log.
type ExitReview struct {
	Ticker        string
	PurchasePrice float64
	CurrentPrice  float64
	RecentHigh    float64
	Shares        float64
	Mode          string
	Result        model.ExitResult
}

// EntryScan holds one scored watchlist ticker for the history log.
type EntryScan struct {
	Ticker            string
	CurrentPrice      float64
	RSI               float64
	VolumeRatio       float64
	RecommendedShares int
	Result            model.EntryResult
}

// Recorder persists evaluation history for later review.
type Recorder interface {
	RecordExitReview(rev *ExitReview) error
	RecordEntryScan(scan *EntryScan) error
	Close() error
}
