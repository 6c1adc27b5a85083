package calculation

import (
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// sumVotes adds tallies as decimals so large counts cannot wrap.
func sumVotes(counts ...int64) decimal.Decimal {
	total := decimal.Zero
	for _, c := range counts {
		total = total.Add(decimal.NewFromInt(c))
	}
	return total
}

// percentOf returns round(100*part/total), rounding half away from zero.
// A zero total yields 0.
func percentOf(part int64, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(decimal.NewFromInt(part).Mul(decimalHundred).Div(total).Round(0).IntPart())
}

// VotePercentage returns the share of yes votes among yes and no votes in whole percents.
func VotePercentage(yes, no int64) int {
	return percentOf(yes, sumVotes(yes, no))
}

// VotePercentageWithAbstain splits votes three ways, rounding each share on its own.
// The shares are not adjusted to sum to exactly 100.
func VotePercentageWithAbstain(yes, no, abstain int64) domain.VoteSplit {
	total := sumVotes(yes, no, abstain)
	if total.IsZero() {
		return domain.VoteSplit{}
	}
	return domain.VoteSplit{
		Yes:     percentOf(yes, total),
		No:      percentOf(no, total),
		Abstain: percentOf(abstain, total),
	}
}

// QuorumProgress returns how much of the quorum has been cast, capped at 100.
// A zero quorum counts as met.
func QuorumProgress(cast, quorum int64) int {
	if quorum <= 0 {
		return 100
	}
	pct := percentOf(cast, decimal.NewFromInt(quorum))
	if pct > 100 {
		return 100
	}
	return pct
}

// QuorumReached reports whether cast votes meet the quorum.
func QuorumReached(cast, quorum int64) bool {
	return cast >= quorum
}

// ApprovalBps returns the yes share of yes and no votes in basis points, truncated.
func ApprovalBps(yes, no int64) int64 {
	total := sumVotes(yes, no)
	if total.IsZero() {
		return 0
	}
	return decimal.NewFromInt(yes).Mul(decimal.NewFromInt(BasisPoints)).Div(total).IntPart()
}
