// Package portfolio loads the portfolio JSON exported by the watchlist app.
// That app owns and mutates the file; this package only reads it.
package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// Defaults applied when the settings block is absent or zeroed.
const (
	DefaultTotalCapital = 1000000
	DefaultRiskPerTrade = 2.0
)

// Load reads the portfolio record set from a JSON file. Two layouts exist in
// the wild: the current {"portfolio": [...], "settings": {...}} object and a
// legacy bare array of positions; both are accepted. A missing file yields an
// empty portfolio with default settings.
func Load(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return withDefaults(&model.Portfolio{}), nil
		}
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	return Parse(data)
}

// Parse decodes portfolio JSON in either supported layout.
func Parse(data []byte) (*model.Portfolio, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return withDefaults(&model.Portfolio{}), nil
	}

	pf := &model.Portfolio{}
	if trimmed[0] == '[' {
		// Legacy export: just the position list.
		if err := json.Unmarshal(trimmed, &pf.Positions); err != nil {
			return nil, fmt.Errorf("parse portfolio list: %w", err)
		}
		return withDefaults(pf), nil
	}

	if err := json.Unmarshal(trimmed, pf); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	return withDefaults(pf), nil
}

func withDefaults(pf *model.Portfolio) *model.Portfolio {
	if pf.Settings.TotalCapital <= 0 {
		pf.Settings.TotalCapital = DefaultTotalCapital
	}
	if pf.Settings.RiskPerTrade <= 0 {
		pf.Settings.RiskPerTrade = DefaultRiskPerTrade
	}
	return pf
}
