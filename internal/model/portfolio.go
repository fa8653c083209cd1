package model

// TradeMode selects the exit rule set applied to holdings.
type TradeMode string

const (
	// ModeShort always trails at the user-configured width.
	ModeShort TradeMode = "short"
	// ModeLong widens the trail as unrealized profit grows and brings the
	// MA75 floor into play in the harvest zone.
	ModeLong TradeMode = "long"
)

// Position status values as stored in the portfolio JSON.
const (
	StatusHolding  = "holding"
	StatusWatching = "watching"
)

// Position is one portfolio record: a held position under exit review or a
// watched ticker under entry scoring. The shape matches the externally
// synced JSON; the ID is an epoch-seconds string assigned at add time and
// doubles as the purchase timestamp.
type Position struct {
	ID          string   `json:"id"`
	Ticker      string   `json:"ticker"`
	Name        string   `json:"name,omitempty"`
	Price       float64  `json:"price"`
	Shares      float64  `json:"shares"`
	Status      string   `json:"status"`
	CustomStop  *float64 `json:"custom_stop"`  // percent; nil or <=0 means use default
	CustomTrail *float64 `json:"custom_trail"` // percent; nil or <=0 means use default
}

// StopFraction resolves the stop-loss width for this position: a positive
// custom_stop percentage wins over the configured default fraction.
func (p *Position) StopFraction(defaultPct float64) float64 {
	if p.CustomStop != nil && *p.CustomStop > 0 {
		return *p.CustomStop / 100
	}
	return defaultPct
}

// TrailFraction resolves the trailing width for this position.
func (p *Position) TrailFraction(defaultPct float64) float64 {
	if p.CustomTrail != nil && *p.CustomTrail > 0 {
		return *p.CustomTrail / 100
	}
	return defaultPct
}

// Settings is the capital block persisted alongside the portfolio records.
type Settings struct {
	TotalCapital float64 `json:"total_capital"`
	RiskPerTrade float64 `json:"risk_per_trade"` // percent of capital risked per trade
}

// Portfolio is the full externally persisted record set.
type Portfolio struct {
	Positions []Position `json:"portfolio"`
	Settings  Settings   `json:"settings"`
}

// Holdings returns the positions under exit review.
func (p *Portfolio) Holdings() []Position {
	return p.filter(StatusHolding)
}

// Watchlist returns the tickers under entry scoring.
func (p *Portfolio) Watchlist() []Position {
	return p.filter(StatusWatching)
}

func (p *Portfolio) filter(status string) []Position {
	var out []Position
	for _, pos := range p.Positions {
		if pos.Status == status {
			out = append(out, pos)
		}
	}
	return out
}
