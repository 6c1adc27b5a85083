package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the full snapshot rendered by the AGORA governance dashboard.
// A snapshot is built once (from a file or the built-in example) and is read-only afterwards.
type Dashboard struct {
	GeneratedAt time.Time     `yaml:"generated_at" json:"generated_at"`
	GasPool     GasPool       `yaml:"gas_pool" json:"gas_pool"`
	DAOTreasury DAOTreasury   `yaml:"dao_treasury" json:"dao_treasury"`
	Treasury    Treasury      `yaml:"treasury" json:"treasury"`
	Proposals   Proposals     `yaml:"proposals" json:"proposals"`
	Voting      Voting        `yaml:"voting" json:"voting"`
	Sanctions   Sanctions     `yaml:"sanctions" json:"sanctions"`
	Protocol    ProtocolStats `yaml:"protocol" json:"protocol"`
}

// GasPool is the SOL pool that subsidizes user transaction fees.
type GasPool struct {
	TotalBalance    decimal.Decimal                 `yaml:"total_balance" json:"total_balance"` // SOL available
	UsedBalance     decimal.Decimal                 `yaml:"used_balance" json:"used_balance"`   // SOL used
	SubsidizedUsers int64                           `yaml:"subsidized_users" json:"subsidized_users"`
	AvgMonthlyUsage decimal.Decimal                 `yaml:"avg_monthly_usage" json:"avg_monthly_usage"` // SOL per month
	ActiveSponsors  int64                           `yaml:"active_sponsors" json:"active_sponsors"`
	Tiers           map[SponsorTierName]SponsorTier `yaml:"tiers" json:"tiers"`
	Sponsors        []Sponsor                       `yaml:"sponsors" json:"sponsors"`
}

// SponsorTier describes the benefits of one sponsorship bracket.
type SponsorTier struct {
	Amount       decimal.Decimal `yaml:"amount" json:"amount"` // contribution in SOL
	MonthlyLimit int64           `yaml:"monthly_limit" json:"monthly_limit"`
	Bonus        int             `yaml:"bonus" json:"bonus"` // percent of the contribution
}

// Sponsor is a gas pool contributor.
type Sponsor struct {
	Name   string          `yaml:"name" json:"name"`
	Tier   SponsorTierName `yaml:"tier" json:"tier"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// DAOTreasury holds the SOL controlled by DAO spending votes.
type DAOTreasury struct {
	SOLBalance  decimal.Decimal               `yaml:"sol_balance" json:"sol_balance"`
	TotalSpent  decimal.Decimal               `yaml:"total_spent" json:"total_spent"`
	TotalVoters int64                         `yaml:"total_voters" json:"total_voters"`
	VotingTiers map[VotingTierName]VotingTier `yaml:"voting_tiers" json:"voting_tiers"`
}

// VotingTier selects the quorum and voting window for a DAO spending request.
// A nil MaxAmount means the tier has no upper bound.
type VotingTier struct {
	MaxAmount *decimal.Decimal `yaml:"max_amount,omitempty" json:"max_amount,omitempty"`
	Duration  string           `yaml:"duration" json:"duration"`
	Quorum    int64            `yaml:"quorum" json:"quorum"`
}

// Treasury is the AGORA token treasury.
type Treasury struct {
	AgoraBalance      decimal.Decimal `yaml:"agora_balance" json:"agora_balance"`
	InflowLast30Days  decimal.Decimal `yaml:"inflow_last_30_days" json:"inflow_last_30_days"`
	OutflowLast30Days decimal.Decimal `yaml:"outflow_last_30_days" json:"outflow_last_30_days"`
	LastUpdated       time.Time       `yaml:"last_updated" json:"last_updated"`
}

// Proposals groups protocol proposals and DAO treasury spending proposals.
type Proposals struct {
	TotalCount   int64         `yaml:"total_count" json:"total_count"`
	ActiveCount  int64         `yaml:"active_count" json:"active_count"`
	Items        []Proposal    `yaml:"items" json:"items"`
	DAOProposals []DAOProposal `yaml:"dao_proposals" json:"dao_proposals"`
}

// Voting summarizes the current user's voting activity.
type Voting struct {
	UserVotingPower int64     `yaml:"user_voting_power" json:"user_voting_power"`
	PendingVotes    int64     `yaml:"pending_votes" json:"pending_votes"`
	TotalVotesCast  int64     `yaml:"total_votes_cast" json:"total_votes_cast"`
	NextDeadline    time.Time `yaml:"next_deadline" json:"next_deadline"`
}

// ProtocolStats are protocol-wide usage and supply figures.
type ProtocolStats struct {
	TotalUsers         int64           `yaml:"total_users" json:"total_users"`
	DailyActiveUsers   int64           `yaml:"daily_active_users" json:"daily_active_users"`
	TotalUBIClaimed    decimal.Decimal `yaml:"total_ubi_claimed" json:"total_ubi_claimed"`
	TotalSupply        decimal.Decimal `yaml:"total_supply" json:"total_supply"`
	CirculatingSupply  decimal.Decimal `yaml:"circulating_supply" json:"circulating_supply"`
	BaseTransactionFee int64           `yaml:"base_transaction_fee" json:"base_transaction_fee"`
	TreasuryFeeShare   int             `yaml:"treasury_fee_share" json:"treasury_fee_share"` // percent
	BurnShare          int             `yaml:"burn_share" json:"burn_share"`                 // percent
}

// FindProposal returns the protocol proposal with the given id.
func (d *Dashboard) FindProposal(id string) (*Proposal, bool) {
	for i := range d.Proposals.Items {
		if d.Proposals.Items[i].ID == id {
			return &d.Proposals.Items[i], true
		}
	}
	return nil, false
}

// FindDAOProposal returns the DAO spending proposal with the given id.
func (d *Dashboard) FindDAOProposal(id string) (*DAOProposal, bool) {
	for i := range d.Proposals.DAOProposals {
		if d.Proposals.DAOProposals[i].ID == id {
			return &d.Proposals.DAOProposals[i], true
		}
	}
	return nil, false
}
