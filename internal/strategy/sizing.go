package strategy

import "math"

// boardLot is the minimum tradable share unit; recommendations round down to
// a multiple of it.
const boardLot = 100

// RecommendShares converts a risk budget into a board-lot share count.
//
// The risk budget is riskPct percent of totalCapital; dividing it by the per
// share risk (currentPrice × stopPct) gives the risk-based size, which is
// then capped by what the capital can buy outright.
func RecommendShares(totalCapital, riskPct, currentPrice, stopPct float64) int {
	if currentPrice <= 0 {
		return 0
	}

	riskBudget := totalCapital * riskPct / 100
	perShareRisk := currentPrice * stopPct

	riskBasedShares := 0.0
	if perShareRisk > 0 {
		riskBasedShares = riskBudget / perShareRisk
	}
	budgetBasedShares := totalCapital / currentPrice

	raw := math.Min(riskBasedShares, budgetBasedShares)
	return int(math.Floor(raw/boardLot)) * boardLot
}
