package calculation

import (
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// SponsorTierFor returns the largest tier whose contribution amount is covered by amount.
// It reports false when amount is below every configured tier.
func SponsorTierFor(amount decimal.Decimal, tiers map[domain.SponsorTierName]domain.SponsorTier) (domain.SponsorTierName, bool) {
	var (
		best  domain.SponsorTierName
		found bool
	)
	for _, name := range domain.SponsorTierNames {
		tier, ok := tiers[name]
		if !ok {
			continue
		}
		if amount.GreaterThanOrEqual(tier.Amount) {
			best, found = name, true
		}
	}
	return best, found
}

// SponsorBonus is the bonus credited for a contribution: amount * bonus%.
func SponsorBonus(amount decimal.Decimal, tier domain.SponsorTier) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(tier.Bonus))).Div(decimalHundred)
}

// VotingTierFor returns the first DAO tier whose max amount is not exceeded by requested.
// A tier without a max amount accepts any request.
func VotingTierFor(requested decimal.Decimal, tiers map[domain.VotingTierName]domain.VotingTier) (domain.VotingTierName, bool) {
	for _, name := range domain.VotingTierNames {
		tier, ok := tiers[name]
		if !ok {
			continue
		}
		if tier.MaxAmount == nil || requested.LessThanOrEqual(*tier.MaxAmount) {
			return name, true
		}
	}
	return "", false
}
