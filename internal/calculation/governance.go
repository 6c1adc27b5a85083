package calculation

import (
	"time"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// BasisPoints is the denominator for approval and quorum rates.
const BasisPoints = 10000

// GovernanceRule is the voting rule applied to one proposal type.
type GovernanceRule struct {
	ApprovalBps  int64         // yes share of yes+no votes needed to pass
	QuorumBps    int64         // share of total users that must vote
	QuorumMin    int64         // quorum floor in votes
	VotingPeriod time.Duration // length of the voting window
}

var governanceRules = map[domain.ProposalType]GovernanceRule{
	domain.TypeStandard:       {ApprovalBps: 5001, QuorumBps: 100, QuorumMin: 10_000, VotingPeriod: 3 * dateutil.Day},
	domain.TypeTreasury:       {ApprovalBps: 5001, QuorumBps: 200, QuorumMin: 20_000, VotingPeriod: 7 * dateutil.Day},
	domain.TypeSanction:       {ApprovalBps: 6700, QuorumBps: 500, QuorumMin: 50_000, VotingPeriod: 14 * dateutil.Day},
	domain.TypeConstitutional: {ApprovalBps: 7500, QuorumBps: 1000, QuorumMin: 100_000, VotingPeriod: 14 * dateutil.Day},
}

// RuleFor returns the governance rule for a proposal type.
// Unknown types fall back to the standard rule.
func RuleFor(t domain.ProposalType) GovernanceRule {
	if r, ok := governanceRules[t]; ok {
		return r
	}
	return governanceRules[domain.TypeStandard]
}

// CalculateQuorum scales the quorum with the user base: max(min, users*bps/10000).
// The product is taken in decimal, so it cannot wrap; bps <= 10000 keeps the result within int64.
func CalculateQuorum(totalUsers int64, t domain.ProposalType) int64 {
	r := RuleFor(t)
	scaled := decimal.NewFromInt(totalUsers).Mul(decimal.NewFromInt(r.QuorumBps)).Div(decimal.NewFromInt(BasisPoints)).Truncate(0)
	if q := scaled.IntPart(); q >= r.QuorumMin {
		return q
	}
	return r.QuorumMin
}

// Passing reports whether a proposal with this tally would pass if voting closed now.
func Passing(t domain.ProposalType, yes, no, quorum int64) bool {
	if sumVotes(yes, no).LessThan(decimal.NewFromInt(quorum)) {
		return false
	}
	return ApprovalBps(yes, no) >= RuleFor(t).ApprovalBps
}
