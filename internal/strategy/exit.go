package strategy

import (
	"math"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// ExitInput carries the scalars the exit evaluator needs for one holding.
// StopPct and TrailPct are fractions in (0,1); MA75 is 0 when unavailable.
type ExitInput struct {
	PurchasePrice float64
	CurrentPrice  float64
	RecentHigh    float64 // anchored high, never below PurchasePrice
	MA75          float64
	StopPct       float64
	TrailPct      float64
	Mode          model.TradeMode
}

// profitZone is one row of the long-mode zone table: its label, the trailing
// width it applies, and whether the MA75 floor participates.
type profitZone struct {
	Label    string
	TrailPct float64
	UseMA75  bool
}

// Long-mode brackets use inclusive lower bounds: 10 <= p < 30.
func zoneFor(mode model.TradeMode, profitPct, trailPct float64) profitZone {
	if mode != model.ModeLong {
		return profitZone{Label: "short-term trade", TrailPct: trailPct}
	}
	switch {
	case profitPct < 10:
		return profitZone{Label: "growing", TrailPct: trailPct}
	case profitPct < 30:
		return profitZone{Label: "stable (trail 15%)", TrailPct: 0.15}
	default:
		return profitZone{Label: "harvest (MA75/20%)", TrailPct: 0.20, UseMA75: true}
	}
}

// emergencyDiscount places the emergency order 1.5% below market so the stop
// can actually trigger.
const emergencyDiscount = 0.985

// EvaluateExit computes the protective sell-trigger price for a holding.
//
// Three candidate floors compete and the highest one wins: the base defense
// line (stop-loss below cost until profit clears 5%, breakeven after), the
// trailing line below the recent high, and in the long-mode harvest zone the
// MA75 line. When the winning floor has already reached the market price,
// every protective rule is breached and the result flips to an emergency
// exit priced just below market.
func EvaluateExit(in ExitInput) model.ExitResult {
	if in.PurchasePrice <= 0 {
		return model.ExitResult{}
	}

	profitPct := (in.CurrentPrice - in.PurchasePrice) / in.PurchasePrice * 100
	zone := zoneFor(in.Mode, profitPct, in.TrailPct)
	label := zone.Label

	var baseLine float64
	if profitPct <= 5 {
		baseLine = in.PurchasePrice * (1 - in.StopPct)
		if in.Mode != model.ModeLong {
			label += "/stop-loss defense"
		}
	} else {
		baseLine = in.PurchasePrice
		if in.Mode != model.ModeLong {
			label += "/breakeven defense"
		}
	}

	trailLine := in.RecentHigh * (1 - zone.TrailPct)

	maLine := 0.0
	if zone.UseMA75 {
		maLine = in.MA75
	}

	suggested := math.Max(baseLine, math.Max(trailLine, maLine))

	orderPrice := suggested
	emergency := false
	if suggested >= in.CurrentPrice {
		emergency = true
		orderPrice = in.CurrentPrice * emergencyDiscount
		label = "emergency exit"
	}

	return model.ExitResult{
		OrderPrice:  orderPrice,
		RawLine:     suggested,
		Label:       label,
		IsEmergency: emergency,
		ProfitPct:   profitPct,
	}
}
