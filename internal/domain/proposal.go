package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is a protocol governance proposal voted on by AGORA holders.
// EndTime is nil while the proposal is still in review.
type Proposal struct {
	ID              string          `yaml:"id" json:"id"`
	Title           string          `yaml:"title" json:"title"`
	Status          ProposalStatus  `yaml:"status" json:"status"`
	Type            ProposalType    `yaml:"type" json:"type"`
	Proposer        string          `yaml:"proposer" json:"proposer"`
	Description     string          `yaml:"description" json:"description"`
	RequestedAmount decimal.Decimal `yaml:"requested_amount" json:"requested_amount"` // AGORA
	VotesYes        int64           `yaml:"votes_yes" json:"votes_yes"`
	VotesNo         int64           `yaml:"votes_no" json:"votes_no"`
	Quorum          int64           `yaml:"quorum" json:"quorum"`
	EndTime         *time.Time      `yaml:"end_time,omitempty" json:"end_time"`
	CreatedAt       time.Time       `yaml:"created_at" json:"created_at"`
}

// VotesCast returns the number of yes and no votes.
func (p *Proposal) VotesCast() int64 { return p.VotesYes + p.VotesNo }

// DAOProposal is a request to spend SOL from the DAO treasury.
// EndsIn is the human label of the remaining voting window ("3 days", "24h")
// relative to the snapshot's GeneratedAt.
type DAOProposal struct {
	ID              string          `yaml:"id" json:"id"`
	Title           string          `yaml:"title" json:"title"`
	Status          ProposalStatus  `yaml:"status" json:"status"`
	Proposer        string          `yaml:"proposer" json:"proposer"`
	Description     string          `yaml:"description" json:"description"`
	RequestedAmount decimal.Decimal `yaml:"requested_amount" json:"requested_amount"` // SOL
	VotesYes        int64           `yaml:"votes_yes" json:"votes_yes"`
	VotesNo         int64           `yaml:"votes_no" json:"votes_no"`
	VotesAbstain    int64           `yaml:"votes_abstain" json:"votes_abstain"`
	Quorum          int64           `yaml:"quorum" json:"quorum"`
	EndsIn          string          `yaml:"end_time" json:"end_time"`
	Tier            int             `yaml:"tier" json:"tier"` // 1..3
}

// VotesCast returns the number of yes, no and abstain votes.
func (p *DAOProposal) VotesCast() int64 { return p.VotesYes + p.VotesNo + p.VotesAbstain }
