package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// ExitCard is one holding's evaluation prepared for rendering.
type ExitCard struct {
	Ticker        string
	Name          string
	Shares        float64
	PurchasePrice float64
	CurrentPrice  float64
	RecentHigh    float64
	Result        model.ExitResult
}

// EntryCard is one watchlist ticker's evaluation prepared for rendering.
type EntryCard struct {
	Ticker            string
	Name              string
	Price             float64
	RSI               float64
	VolumeRatio       float64
	RecommendedShares int
	Result            model.EntryResult
}

// FormatExitReport renders the stop-order instructions for all holdings.
func FormatExitReport(cards []ExitCard) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 <b>Exit review</b> | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString("Place these stop (sell) orders with your broker.\n\n")

	if len(cards) == 0 {
		b.WriteString("No holdings.\n")
		return b.String()
	}

	totalValue := 0.0
	for _, c := range cards {
		name := c.Name
		if name == "" {
			name = c.Ticker
		}
		marker := "•"
		if c.Result.IsEmergency {
			marker = "🚨"
		}
		b.WriteString(fmt.Sprintf("%s <b>%s</b> (%s) — %s\n", marker, c.Ticker, name, c.Result.Label))
		b.WriteString(fmt.Sprintf("   sell at %.0f or below (line %.0f)\n", c.Result.OrderPrice, c.Result.RawLine))

		pl := (c.CurrentPrice - c.PurchasePrice) * c.Shares
		b.WriteString(fmt.Sprintf("   cost %.0f | now %.0f | high %.0f | %v shares\n",
			c.PurchasePrice, c.CurrentPrice, c.RecentHigh, c.Shares))
		b.WriteString(fmt.Sprintf("   P/L %+.0f (%+.1f%%)\n\n", pl, c.Result.ProfitPct))

		totalValue += c.CurrentPrice * c.Shares
	}
	b.WriteString(fmt.Sprintf("Total market value: %.0f\n", totalValue))
	return b.String()
}

// FormatEntryReport renders the watchlist scores. cashRemaining is the
// capital left after the holdings' market value.
func FormatEntryReport(cards []EntryCard, cashRemaining float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 <b>Entry scan</b> | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Buying power: %.0f (score ≥ 50 is a buy)\n\n", cashRemaining))

	if len(cards) == 0 {
		b.WriteString("Watchlist is empty.\n")
		return b.String()
	}

	for _, c := range cards {
		name := c.Name
		if name == "" {
			name = c.Ticker
		}
		marker := "💤"
		if c.Result.BuySignal() {
			marker = "🚀"
		}
		reasons := "—"
		if len(c.Result.Reasons) > 0 {
			reasons = strings.Join(c.Result.Reasons, ", ")
		}
		b.WriteString(fmt.Sprintf("%s <b>%s</b> (%s) — score %d\n", marker, c.Ticker, name, c.Result.Score))
		b.WriteString(fmt.Sprintf("   price %.0f | RSI %.1f | volume ×%.1f\n", c.Price, c.RSI, c.VolumeRatio))
		b.WriteString(fmt.Sprintf("   factors: %s | suggested size: %d shares\n\n", reasons, c.RecommendedShares))
	}
	return b.String()
}

// FormatPortfolioStatus renders the capital settings summary.
func FormatPortfolioStatus(settings model.Settings, holdings, watching int) string {
	var b strings.Builder
	b.WriteString("💰 <b>Portfolio</b>\n\n")
	b.WriteString(fmt.Sprintf("Total capital: %.0f\n", settings.TotalCapital))
	b.WriteString(fmt.Sprintf("Risk per trade: %.1f%%\n", settings.RiskPerTrade))
	b.WriteString(fmt.Sprintf("Holdings: %d | Watching: %d\n", holdings, watching))
	return b.String()
}
