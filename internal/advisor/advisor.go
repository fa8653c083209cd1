// Package advisor orchestrates the review passes: exit evaluation over
// holdings and entry scoring over the watchlist.
package advisor

import (
	"context"
	"log"
	"math"

	"github.com/MasatsuguKitadai/TrendChecker/internal/collector"
	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
	"github.com/MasatsuguKitadai/TrendChecker/internal/notifier"
	"github.com/MasatsuguKitadai/TrendChecker/internal/recorder"
	"github.com/MasatsuguKitadai/TrendChecker/internal/strategy"
)

// Advisor wires the collector, portfolio and strategy core together.
type Advisor struct {
	Collector *collector.Collector
	Portfolio *model.Portfolio
	Notifier  *notifier.TelegramNotifier // nil when Telegram is not configured
	Recorder  recorder.Recorder

	Mode     model.TradeMode
	StopPct  float64
	TrailPct float64

	Ctx context.Context
}

// New creates an Advisor.
func New(ctx context.Context, col *collector.Collector, pf *model.Portfolio, tn *notifier.TelegramNotifier, rec recorder.Recorder, mode model.TradeMode, stopPct, trailPct float64) *Advisor {
	return &Advisor{
		Collector: col,
		Portfolio: pf,
		Notifier:  tn,
		Recorder:  rec,
		Mode:      mode,
		StopPct:   stopPct,
		TrailPct:  trailPct,
		Ctx:       ctx,
	}
}

// RunExitReview evaluates every holding and returns the formatted report.
// Tickers whose data cannot be fetched are skipped with a warning; the review
// itself never fails.
func (a *Advisor) RunExitReview() string {
	var cards []notifier.ExitCard

	for _, h := range a.Portfolio.Holdings() {
		series, ind, err := a.Collector.Collect(h.Ticker)
		if err != nil {
			log.Printf("[WARN] exit review: skip %s: %v", h.Ticker, err)
			continue
		}

		m := strategy.SnapshotMetrics(series, ind, h.Price, h.ID)
		result := strategy.EvaluateExit(strategy.ExitInput{
			PurchasePrice: h.Price,
			CurrentPrice:  m.CurrentPrice,
			RecentHigh:    m.RecentHigh,
			MA75:          m.MA75,
			StopPct:       h.StopFraction(a.StopPct),
			TrailPct:      h.TrailFraction(a.TrailPct),
			Mode:          a.Mode,
		})

		cards = append(cards, notifier.ExitCard{
			Ticker:        h.Ticker,
			Name:          a.displayName(h),
			Shares:        h.Shares,
			PurchasePrice: h.Price,
			CurrentPrice:  m.CurrentPrice,
			RecentHigh:    m.RecentHigh,
			Result:        result,
		})

		if err := a.Recorder.RecordExitReview(&recorder.ExitReview{
			Ticker:        h.Ticker,
			PurchasePrice: h.Price,
			CurrentPrice:  m.CurrentPrice,
			RecentHigh:    m.RecentHigh,
			Shares:        h.Shares,
			Mode:          string(a.Mode),
			Result:        result,
		}); err != nil {
			log.Printf("[ERROR] record exit review for %s: %v", h.Ticker, err)
		}
	}

	report := notifier.FormatExitReport(cards)
	a.trySend(report)
	return report
}

// RunEntryScan scores every watched ticker, sizes a recommended buy from the
// portfolio settings, and returns the formatted report.
func (a *Advisor) RunEntryScan() string {
	var cards []notifier.EntryCard
	settings := a.Portfolio.Settings

	for _, w := range a.Portfolio.Watchlist() {
		series, ind, err := a.Collector.Collect(w.Ticker)
		if err != nil {
			log.Printf("[WARN] entry scan: skip %s: %v", w.Ticker, err)
			continue
		}

		result := strategy.ScoreEntry(series, ind)
		price := series.LastClose()

		n := series.Len()
		rsi := 0.0
		if v := ind.RSI14[n-1]; !math.IsNaN(v) {
			rsi = v
		}
		volRatio := 0.0
		if volMA := ind.VolMA5[n-1]; volMA > 0 {
			volRatio = series.Bars[n-1].Volume / volMA
		}

		shares := strategy.RecommendShares(settings.TotalCapital, settings.RiskPerTrade, price, a.StopPct)

		cards = append(cards, notifier.EntryCard{
			Ticker:            w.Ticker,
			Name:              a.displayName(w),
			Price:             price,
			RSI:               rsi,
			VolumeRatio:       volRatio,
			RecommendedShares: shares,
			Result:            result,
		})

		if err := a.Recorder.RecordEntryScan(&recorder.EntryScan{
			Ticker:            w.Ticker,
			CurrentPrice:      price,
			RSI:               rsi,
			VolumeRatio:       volRatio,
			RecommendedShares: shares,
			Result:            result,
		}); err != nil {
			log.Printf("[ERROR] record entry scan for %s: %v", w.Ticker, err)
		}
	}

	report := notifier.FormatEntryReport(cards, a.cashRemaining())
	a.trySend(report)
	return report
}

// displayName prefers the name stored in the portfolio and falls back to the
// provider's short name, then the ticker.
func (a *Advisor) displayName(pos model.Position) string {
	if pos.Name != "" {
		return pos.Name
	}
	name, err := a.Collector.Fetcher.FetchName(pos.Ticker)
	if err != nil || name == "" {
		return pos.Ticker
	}
	return name
}

// cashRemaining is the configured capital minus the holdings' market value.
func (a *Advisor) cashRemaining() float64 {
	value := 0.0
	for _, h := range a.Portfolio.Holdings() {
		series, _, err := a.Collector.Collect(h.Ticker)
		if err != nil {
			continue
		}
		value += series.LastClose() * h.Shares
	}
	return a.Portfolio.Settings.TotalCapital - value
}

// HandleCommand processes a Telegram command and returns the reply.
func (a *Advisor) HandleCommand(command string) string {
	switch command {
	case "/exit":
		a.RunExitReview() // sends its own report
		return ""
	case "/entry":
		a.RunEntryScan()
		return ""
	case "/portfolio":
		return notifier.FormatPortfolioStatus(a.Portfolio.Settings,
			len(a.Portfolio.Holdings()), len(a.Portfolio.Watchlist()))
	default:
		return "Commands:\n• /exit — stop-order review for holdings\n• /entry — watchlist scoring\n• /portfolio — capital settings"
	}
}

func (a *Advisor) trySend(text string) {
	if a.Notifier == nil {
		return
	}
	if err := a.Notifier.SendWithRetry(a.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
