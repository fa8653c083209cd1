package strategy

import (
	"math"
	"testing"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluateExit_ShortBreakeven(t *testing.T) {
	// Profit 20% in short mode: breakeven base, 10% trail off the high.
	res := EvaluateExit(ExitInput{
		PurchasePrice: 1000, CurrentPrice: 1200, RecentHigh: 1200,
		StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeShort,
	})
	if !almostEqual(res.ProfitPct, 20) {
		t.Errorf("expected profit 20%%, got %v", res.ProfitPct)
	}
	if !almostEqual(res.RawLine, 1080) {
		t.Errorf("expected suggested line 1080, got %v", res.RawLine)
	}
	if res.IsEmergency {
		t.Error("line below market must not be an emergency")
	}
	if !almostEqual(res.OrderPrice, 1080) {
		t.Errorf("expected order price 1080, got %v", res.OrderPrice)
	}
	if res.Label != "short-term trade/breakeven defense" {
		t.Errorf("unexpected label %q", res.Label)
	}
}

func TestEvaluateExit_LongGrowing(t *testing.T) {
	// Profit exactly 5%: still the stop-loss base, growing zone.
	res := EvaluateExit(ExitInput{
		PurchasePrice: 1000, CurrentPrice: 1050, RecentHigh: 1050,
		StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeLong,
	})
	if res.Label != "growing" {
		t.Errorf("expected growing zone, got %q", res.Label)
	}
	if !almostEqual(res.RawLine, 950) {
		t.Errorf("expected stop-loss base 950 to win over trail 945, got %v", res.RawLine)
	}
	if res.IsEmergency {
		t.Error("950 < 1050 must not be an emergency")
	}
}

func TestEvaluateExit_Emergency(t *testing.T) {
	// Every floor at or above market: emergency order 1.5% below market.
	res := EvaluateExit(ExitInput{
		PurchasePrice: 1000, CurrentPrice: 900, RecentHigh: 1000,
		StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeShort,
	})
	if !almostEqual(res.ProfitPct, -10) {
		t.Errorf("expected profit -10%%, got %v", res.ProfitPct)
	}
	if !almostEqual(res.RawLine, 950) {
		t.Errorf("expected suggested line 950, got %v", res.RawLine)
	}
	if !res.IsEmergency {
		t.Fatal("line above market must flip to emergency")
	}
	if !almostEqual(res.OrderPrice, 900*0.985) {
		t.Errorf("expected order price %.4f, got %v", 900*0.985, res.OrderPrice)
	}
	if res.Label != "emergency exit" {
		t.Errorf("expected emergency label, got %q", res.Label)
	}
}

func TestEvaluateExit_LongZoneBoundaries(t *testing.T) {
	tests := []struct {
		profitPct float64
		label     string
		trailPct  float64
		useMA75   bool
	}{
		{-5, "growing", 0.10, false},
		{9.999, "growing", 0.10, false},
		{10, "stable (trail 15%)", 0.15, false},
		{29.999, "stable (trail 15%)", 0.15, false},
		{30, "harvest (MA75/20%)", 0.20, true},
		{80, "harvest (MA75/20%)", 0.20, true},
	}
	for _, tt := range tests {
		zone := zoneFor(model.ModeLong, tt.profitPct, 0.10)
		if zone.Label != tt.label {
			t.Errorf("profit %.3f: expected zone %q, got %q", tt.profitPct, tt.label, zone.Label)
		}
		if !almostEqual(zone.TrailPct, tt.trailPct) {
			t.Errorf("profit %.3f: expected trail %v, got %v", tt.profitPct, tt.trailPct, zone.TrailPct)
		}
		if zone.UseMA75 != tt.useMA75 {
			t.Errorf("profit %.3f: expected useMA75=%v", tt.profitPct, tt.useMA75)
		}
	}
}

func TestEvaluateExit_HarvestMA75Floor(t *testing.T) {
	// Long mode, profit 35%: MA75 above the trail line becomes the floor.
	res := EvaluateExit(ExitInput{
		PurchasePrice: 1000, CurrentPrice: 1350, RecentHigh: 1400, MA75: 1300,
		StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeLong,
	})
	if res.Label != "harvest (MA75/20%)" {
		t.Errorf("unexpected label %q", res.Label)
	}
	// Candidates: breakeven 1000, trail 1400*0.80=1120, MA75 1300.
	if !almostEqual(res.RawLine, 1300) {
		t.Errorf("expected MA75 floor 1300, got %v", res.RawLine)
	}
	if res.IsEmergency {
		t.Error("1300 < 1350 must not be an emergency")
	}
}

func TestEvaluateExit_MA75IgnoredOutsideHarvest(t *testing.T) {
	// Same MA75 in short mode: the MA line must not participate.
	res := EvaluateExit(ExitInput{
		PurchasePrice: 1000, CurrentPrice: 1350, RecentHigh: 1400, MA75: 1300,
		StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeShort,
	})
	if !almostEqual(res.RawLine, 1260) { // trail 1400*0.90
		t.Errorf("expected trail line 1260, got %v", res.RawLine)
	}
}

func TestEvaluateExit_FloorInvariants(t *testing.T) {
	inputs := []ExitInput{
		{PurchasePrice: 1000, CurrentPrice: 1200, RecentHigh: 1200, StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeShort},
		{PurchasePrice: 500, CurrentPrice: 480, RecentHigh: 510, StopPct: 0.08, TrailPct: 0.12, Mode: model.ModeShort},
		{PurchasePrice: 2000, CurrentPrice: 2900, RecentHigh: 3000, MA75: 2500, StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeLong},
		{PurchasePrice: 100, CurrentPrice: 104, RecentHigh: 110, StopPct: 0.03, TrailPct: 0.05, Mode: model.ModeLong},
	}
	for i, in := range inputs {
		res := EvaluateExit(in)

		zone := zoneFor(in.Mode, res.ProfitPct, in.TrailPct)
		trailLine := in.RecentHigh * (1 - zone.TrailPct)
		if res.RawLine < trailLine-1e-9 {
			t.Errorf("case %d: suggested %v below trail line %v", i, res.RawLine, trailLine)
		}

		var baseLine float64
		if res.ProfitPct <= 5 {
			baseLine = in.PurchasePrice * (1 - in.StopPct)
		} else {
			baseLine = in.PurchasePrice
		}
		if res.RawLine < baseLine-1e-9 {
			t.Errorf("case %d: suggested %v below base line %v", i, res.RawLine, baseLine)
		}

		if res.IsEmergency != (res.RawLine >= in.CurrentPrice) {
			t.Errorf("case %d: emergency flag inconsistent with line %v vs price %v", i, res.RawLine, in.CurrentPrice)
		}

		again := EvaluateExit(in)
		if again != res {
			t.Errorf("case %d: repeated evaluation differs", i)
		}
	}
}

func TestEvaluateExit_InvalidPurchasePrice(t *testing.T) {
	res := EvaluateExit(ExitInput{CurrentPrice: 100, RecentHigh: 100, StopPct: 0.05, TrailPct: 0.10, Mode: model.ModeShort})
	if res != (model.ExitResult{}) {
		t.Errorf("expected zero result for non-positive purchase price, got %+v", res)
	}
}
