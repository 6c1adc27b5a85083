package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SponsorTierName names a gas pool sponsorship bracket.
type SponsorTierName string

const (
	TierBronze   SponsorTierName = "bronze"
	TierSilver   SponsorTierName = "silver"
	TierGold     SponsorTierName = "gold"
	TierPlatinum SponsorTierName = "platinum"
	TierDiamond  SponsorTierName = "diamond"
)

// SponsorTierNames lists sponsor tiers from smallest to largest contribution.
var SponsorTierNames = []SponsorTierName{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}

// UnmarshalYAML rejects tier names outside the known set.
func (t *SponsorTierName) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for _, known := range SponsorTierNames {
		if SponsorTierName(s) == known {
			*t = known
			return nil
		}
	}
	return fmt.Errorf("unknown sponsor tier %q (line %d)", s, value.Line)
}

// VotingTierName names a DAO spending approval tier.
type VotingTierName string

const (
	VotingTier1 VotingTierName = "tier1"
	VotingTier2 VotingTierName = "tier2"
	VotingTier3 VotingTierName = "tier3"
)

// VotingTierNames lists DAO tiers in ascending spending order.
var VotingTierNames = []VotingTierName{VotingTier1, VotingTier2, VotingTier3}

// VotingTierNameFor maps the numeric tier carried by a DAO proposal to its key.
func VotingTierNameFor(tier int) (VotingTierName, bool) {
	if tier < 1 || tier > len(VotingTierNames) {
		return "", false
	}
	return VotingTierNames[tier-1], true
}

// UnmarshalYAML rejects tier names outside the known set.
func (t *VotingTierName) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for _, known := range VotingTierNames {
		if VotingTierName(s) == known {
			*t = known
			return nil
		}
	}
	return fmt.Errorf("unknown voting tier %q (line %d)", s, value.Line)
}

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

const (
	StatusReview   ProposalStatus = "review"
	StatusVoting   ProposalStatus = "voting"
	StatusPassed   ProposalStatus = "passed"
	StatusRejected ProposalStatus = "rejected"
	StatusExpired  ProposalStatus = "expired"
)

var proposalStatuses = []ProposalStatus{StatusReview, StatusVoting, StatusPassed, StatusRejected, StatusExpired}

// UnmarshalYAML rejects statuses outside the known set.
func (s *ProposalStatus) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for _, known := range proposalStatuses {
		if ProposalStatus(raw) == known {
			*s = known
			return nil
		}
	}
	return fmt.Errorf("unknown proposal status %q (line %d)", raw, value.Line)
}

// ProposalType selects the approval threshold, quorum and voting period of a proposal.
type ProposalType string

const (
	TypeStandard       ProposalType = "standard"
	TypeTreasury       ProposalType = "treasury"
	TypeConstitutional ProposalType = "constitutional"
	TypeSanction       ProposalType = "sanction"
)

var proposalTypes = []ProposalType{TypeStandard, TypeTreasury, TypeConstitutional, TypeSanction}

// UnmarshalYAML rejects types outside the known set.
func (p *ProposalType) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for _, known := range proposalTypes {
		if ProposalType(raw) == known {
			*p = known
			return nil
		}
	}
	return fmt.Errorf("unknown proposal type %q (line %d)", raw, value.Line)
}
