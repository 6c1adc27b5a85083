package calculation

import "github.com/shopspring/decimal"

// GasPoolUsagePercent returns used/(total+used) in whole percents.
// When both balances are zero the pool is reported as 0% used.
func GasPoolUsagePercent(totalBalance, usedBalance decimal.Decimal) int {
	capacity := totalBalance.Add(usedBalance)
	if capacity.IsZero() {
		return 0
	}
	return int(usedBalance.Mul(decimalHundred).Div(capacity).Round(0).IntPart())
}
