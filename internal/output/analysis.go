package output

import (
	"sort"

	"github.com/agora-protocol/dashboard/internal/domain"
)

// ProposalSummary condenses the open proposals of a view.
type ProposalSummary struct {
	Open          int
	Passing       int
	Failing       int
	InReview      int
	ClosingSoonID string
	ClosingSoon   string
}

// SummarizeProposals counts passing and failing votes and finds the protocol
// proposal whose voting window closes first.
func SummarizeProposals(view *domain.DashboardView) ProposalSummary {
	var s ProposalSummary
	type open struct {
		id  string
		end int64
		txt string
	}
	var deadlines []open
	for _, p := range view.Proposals {
		switch p.Status {
		case domain.StatusReview:
			s.InReview++
			continue
		case domain.StatusVoting:
		default:
			continue
		}
		s.Open++
		if p.Passing {
			s.Passing++
		} else {
			s.Failing++
		}
		if p.EndTime != nil && p.TimeLeft != nil && !p.TimeLeft.Expired {
			deadlines = append(deadlines, open{p.ID, p.EndTime.Unix(), p.TimeLeft.Text})
		}
	}
	if len(deadlines) == 0 {
		return s
	}
	sort.SliceStable(deadlines, func(i, j int) bool { return deadlines[i].end < deadlines[j].end })
	s.ClosingSoonID = deadlines[0].id
	s.ClosingSoon = deadlines[0].txt
	return s
}
