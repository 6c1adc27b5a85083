package domain

import "time"

// Sanctions lists country sanctions imposed by governance vote.
type Sanctions struct {
	ActiveCount     int64                `yaml:"active_count" json:"active_count"`
	HistoricalCount int64                `yaml:"historical_count" json:"historical_count"`
	Active          []ActiveSanction     `yaml:"active" json:"active"`
	Historical      []HistoricalSanction `yaml:"historical" json:"historical"`
}

// ActiveSanction is a sanction currently reducing UBI for a country.
// SanctionRate is the percent multiplied by 100 (1000 == 10%).
// ProposalID is informational and is not checked against the proposal list.
type ActiveSanction struct {
	CountryCode  string    `yaml:"country_code" json:"country_code"`
	CountryName  string    `yaml:"country_name" json:"country_name"`
	Reason       string    `yaml:"reason" json:"reason"`
	EvidenceHash string    `yaml:"evidence_hash" json:"evidence_hash"`
	SanctionRate int64     `yaml:"sanction_rate" json:"sanction_rate"`
	ImposedAt    time.Time `yaml:"imposed_at" json:"imposed_at"`
	ExpiresAt    time.Time `yaml:"expires_at" json:"expires_at"`
	VotesFor     int64     `yaml:"votes_for" json:"votes_for"`
	VotesAgainst int64     `yaml:"votes_against" json:"votes_against"`
	ProposalID   string    `yaml:"proposal_id" json:"proposal_id"`
}

// HistoricalSanction is a sanction that has ended. Duration is in days.
type HistoricalSanction struct {
	CountryCode string `yaml:"country_code" json:"country_code"`
	CountryName string `yaml:"country_name" json:"country_name"`
	Reason      string `yaml:"reason" json:"reason"`
	WasLifted   bool   `yaml:"was_lifted" json:"was_lifted"`
	LiftReason  string `yaml:"lift_reason,omitempty" json:"lift_reason,omitempty"`
	Duration    int    `yaml:"duration" json:"duration"`
}
