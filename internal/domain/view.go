package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardView is a snapshot together with every value derived from it at a point in time.
// Countdowns in a view are valid only for GeneratedAt and must be rebuilt to refresh.
type DashboardView struct {
	Snapshot    *Dashboard          `json:"snapshot"`
	GeneratedAt time.Time           `json:"generated_at"`
	GasPool     GasPoolView         `json:"gas_pool"`
	DAOTreasury DAOTreasuryView     `json:"dao_treasury"`
	Treasury    TreasuryView        `json:"treasury"`
	Proposals   []ProposalView      `json:"proposals"`
	DAO         []DAOProposalView   `json:"dao_proposals"`
	Voting      VotingView          `json:"voting"`
	Sanctions   []SanctionView      `json:"sanctions"`
	Historical  []HistoricalSanView `json:"historical_sanctions"`
	Protocol    ProtocolView        `json:"protocol"`
}

// Remaining is the countdown text shown next to a deadline.
type Remaining struct {
	Expired bool   `json:"expired"`
	Text    string `json:"text"`
}

// VoteSplit is a three-way vote share in whole percents.
// The fields are rounded independently and may sum to 99 or 101.
type VoteSplit struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Abstain int `json:"abstain"`
}

// GasPoolView holds gas pool figures derived from the snapshot.
type GasPoolView struct {
	UsagePercent int             `json:"usage_percent"`
	Capacity     decimal.Decimal `json:"capacity"`
	Sponsors     []SponsorView   `json:"sponsors"`
}

// SponsorView describes a sponsor with the tier its contribution qualifies for.
type SponsorView struct {
	Sponsor
	QualifiedTier SponsorTierName `json:"qualified_tier"`
	BonusAmount   decimal.Decimal `json:"bonus_amount"`
	MonthlyLimit  int64           `json:"monthly_limit"`
}

// DAOTreasuryView holds DAO treasury figures derived from the snapshot.
type DAOTreasuryView struct {
	PendingRequested decimal.Decimal `json:"pending_requested"`
	Remaining        decimal.Decimal `json:"remaining_after_pending"`
}

// TreasuryView holds AGORA treasury figures derived from the snapshot.
type TreasuryView struct {
	NetFlow30d decimal.Decimal `json:"net_flow_30d"`
	UpdatedAgo string          `json:"updated_ago"`
}

// ProposalView is a protocol proposal with its tally and countdown.
// TimeLeft is nil for proposals that have no voting deadline yet.
type ProposalView struct {
	Proposal
	YesPercent        int        `json:"yes_percent"`
	QuorumPercent     int        `json:"quorum_percent"`
	QuorumReached     bool       `json:"quorum_reached"`
	ApprovalBps       int64      `json:"approval_bps"`
	RequiredBps       int64      `json:"required_bps"`
	Passing           bool       `json:"passing"`
	TimeLeft          *Remaining `json:"time_left"`
	VotingPeriodLabel string     `json:"voting_period_label"`
}

// DAOProposalView is a DAO spending proposal with its tally, tier rule and countdown.
// Deadline is nil when EndsIn could not be read as a duration.
type DAOProposalView struct {
	DAOProposal
	Split           VoteSplit      `json:"split"`
	QuorumReached   bool           `json:"quorum_reached"`
	Rule            *VotingTier    `json:"rule,omitempty"`
	ExpectedTier    VotingTierName `json:"expected_tier"`
	Deadline        *time.Time     `json:"deadline"`
	TimeLeft        Remaining      `json:"time_left"`
	ParticipationPc int            `json:"participation_percent"`
}

// VotingView holds the current user's voting figures.
type VotingView struct {
	NextDeadline Remaining `json:"next_deadline"`
}

// SanctionView is an active sanction with derived percentages and expiry.
type SanctionView struct {
	ActiveSanction
	RatePercent    decimal.Decimal `json:"rate_percent"`
	SupportPercent int             `json:"support_percent"`
	ExpiresIn      Remaining       `json:"expires_in"`
}

// HistoricalSanView is an ended sanction with a display duration.
type HistoricalSanView struct {
	HistoricalSanction
	DurationLabel string `json:"duration_label"`
}

// ProtocolView holds protocol-wide ratios derived from the snapshot.
type ProtocolView struct {
	CirculatingPercent decimal.Decimal `json:"circulating_percent"`
	DailyActivePercent int             `json:"daily_active_percent"`
	UBIPerUser         decimal.Decimal `json:"ubi_per_user"`
}
