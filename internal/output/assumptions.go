package output

import (
	"fmt"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/dateutil"
)

var ruleOrder = []domain.ProposalType{
	domain.TypeStandard,
	domain.TypeTreasury,
	domain.TypeSanction,
	domain.TypeConstitutional,
}

// GovernanceNotes lists the voting rule of each proposal type for detailed outputs.
func GovernanceNotes() []string {
	notes := make([]string, 0, len(ruleOrder)+1)
	for _, t := range ruleOrder {
		r := calculation.RuleFor(t)
		notes = append(notes, fmt.Sprintf("%s: %s approval, quorum %s of users (min %s), %s voting",
			t, FormatBps(r.ApprovalBps), FormatBps(r.QuorumBps), CommaInt(r.QuorumMin), dateutil.FormatPeriod(r.VotingPeriod)))
	}
	notes = append(notes, "Sanction rates are stored in basis points of UBI (1000 = 10%)")
	return notes
}
