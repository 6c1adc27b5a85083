package calculation

import "github.com/shopspring/decimal"

// SanctionRateToPercent converts a stored sanction rate (percent x 100) to percent.
// 1000 is 10%, 550 is 5.5%.
func SanctionRateToPercent(rate int64) decimal.Decimal {
	return decimal.New(rate, -2)
}

// SanctionSupportPercent is the share of votes for a sanction.
func SanctionSupportPercent(votesFor, votesAgainst int64) int {
	return VotePercentage(votesFor, votesAgainst)
}
