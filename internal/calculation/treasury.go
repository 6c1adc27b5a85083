package calculation

import (
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// NetFlow is inflow minus outflow over the same window.
func NetFlow(inflow, outflow decimal.Decimal) decimal.Decimal {
	return inflow.Sub(outflow)
}

// PendingDAORequests sums the SOL requested by DAO proposals still in voting.
func PendingDAORequests(proposals []domain.DAOProposal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range proposals {
		if p.Status == domain.StatusVoting {
			total = total.Add(p.RequestedAmount)
		}
	}
	return total
}

// CirculatingPercent is circulating/total supply as a percent with two decimals.
func CirculatingPercent(circulating, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return circulating.Mul(decimalHundred).Div(total).Round(2)
}

// PerUser divides an amount across users, rounded to two decimals.
func PerUser(amount decimal.Decimal, users int64) decimal.Decimal {
	if users == 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(users)).Round(2)
}
