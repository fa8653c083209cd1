package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

func TestParse_ObjectLayout(t *testing.T) {
	data := []byte(`{
		"portfolio": [
			{"id": "1716772096.123", "ticker": "7203.T", "name": "Toyota", "price": 2500, "shares": 100, "status": "holding", "custom_stop": 8, "custom_trail": null},
			{"id": "1716772100.5", "ticker": "202A.T", "price": 0, "shares": 0, "status": "watching", "custom_stop": null, "custom_trail": null}
		],
		"settings": {"total_capital": 3000000, "risk_per_trade": 1.5}
	}`)

	pf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pf.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(pf.Positions))
	}
	if pf.Settings.TotalCapital != 3000000 || pf.Settings.RiskPerTrade != 1.5 {
		t.Errorf("settings not preserved: %+v", pf.Settings)
	}

	holdings := pf.Holdings()
	if len(holdings) != 1 || holdings[0].Ticker != "7203.T" {
		t.Fatalf("expected one holding 7203.T, got %+v", holdings)
	}
	watching := pf.Watchlist()
	if len(watching) != 1 || watching[0].Ticker != "202A.T" {
		t.Fatalf("expected one watched 202A.T, got %+v", watching)
	}
}

func TestParse_LegacyArrayLayout(t *testing.T) {
	data := []byte(`[{"id": "1700000000.0", "ticker": "9984.T", "price": 7000, "shares": 100, "status": "holding"}]`)

	pf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pf.Positions) != 1 || pf.Positions[0].Ticker != "9984.T" {
		t.Fatalf("legacy list not decoded: %+v", pf.Positions)
	}
	if pf.Settings.TotalCapital != DefaultTotalCapital {
		t.Errorf("expected default capital %v, got %v", float64(DefaultTotalCapital), pf.Settings.TotalCapital)
	}
	if pf.Settings.RiskPerTrade != DefaultRiskPerTrade {
		t.Errorf("expected default risk %v, got %v", DefaultRiskPerTrade, pf.Settings.RiskPerTrade)
	}
}

func TestParse_EmptyAndInvalid(t *testing.T) {
	pf, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("unexpected error for empty input: %v", err)
	}
	if len(pf.Positions) != 0 || pf.Settings.TotalCapital != DefaultTotalCapital {
		t.Errorf("expected empty defaults, got %+v", pf)
	}

	if _, err := Parse([]byte("{broken")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	pf, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(pf.Positions) != 0 || pf.Settings.RiskPerTrade != DefaultRiskPerTrade {
		t.Errorf("expected fresh defaults, got %+v", pf)
	}
}

func TestLoad_RoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	content := `{"portfolio": [{"id": "1", "ticker": "X", "price": 10, "shares": 100, "status": "watching"}], "settings": {"total_capital": 500000, "risk_per_trade": 2}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	pf, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pf.Watchlist()) != 1 || pf.Settings.TotalCapital != 500000 {
		t.Errorf("file not loaded correctly: %+v", pf)
	}
}

func TestPosition_CustomOverrides(t *testing.T) {
	eight := 8.0
	zero := 0.0
	tests := []struct {
		name string
		pos  model.Position
		want float64
	}{
		{"custom stop wins", model.Position{CustomStop: &eight}, 0.08},
		{"nil uses default", model.Position{}, 0.05},
		{"zero uses default", model.Position{CustomStop: &zero}, 0.05},
	}
	for _, tt := range tests {
		if got := tt.pos.StopFraction(0.05); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	twelve := 12.0
	p := model.Position{CustomTrail: &twelve}
	if got := p.TrailFraction(0.10); got != 0.12 {
		t.Errorf("expected custom trail 0.12, got %v", got)
	}
}
