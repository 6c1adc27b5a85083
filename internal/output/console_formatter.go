package output

import (
	"bytes"
	"fmt"

	"github.com/agora-protocol/dashboard/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil || view.Snapshot == nil {
		return nil, ErrNilView
	}
	d := view.Snapshot
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "AGORA DASHBOARD SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Gas pool: %s available, %s used\n", SOLAmount(d.GasPool.TotalBalance), FormatWholePercent(view.GasPool.UsagePercent))
	fmt.Fprintf(&buf, "Treasury: %s AGORA, DAO %s\n", CompactNumber(d.Treasury.AgoraBalance), SOLAmount(d.DAOTreasury.SOLBalance))
	fmt.Fprintf(&buf, "Users: %s (%s active today)\n", CompactInt(d.Protocol.TotalUsers), CompactInt(d.Protocol.DailyActiveUsers))
	fmt.Fprintln(&buf)
	for _, p := range view.Proposals {
		left := dash
		if p.TimeLeft != nil {
			left = p.TimeLeft.Text
		}
		fmt.Fprintf(&buf, "%s: Yes=%s Quorum=%s Left=%s\n", p.ID, FormatWholePercent(p.YesPercent), FormatWholePercent(p.QuorumPercent), left)
	}
	for _, p := range view.DAO {
		fmt.Fprintf(&buf, "DAO-%s: Yes=%s No=%s Abstain=%s Left=%s\n",
			p.ID, FormatWholePercent(p.Split.Yes), FormatWholePercent(p.Split.No), FormatWholePercent(p.Split.Abstain), p.TimeLeft.Text)
	}
	for _, s := range view.Sanctions {
		fmt.Fprintf(&buf, "Sanction %s: -%s UBI, expires in %s\n", s.CountryCode, FormatPercentage(s.RatePercent), s.ExpiresIn.Text)
	}
	sum := SummarizeProposals(view)
	if sum.ClosingSoonID != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Closing first: %s in %s (%d passing / %d failing)\n", sum.ClosingSoonID, sum.ClosingSoon, sum.Passing, sum.Failing)
	}
	return buf.Bytes(), nil
}
