package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/lamports"
)

// ConsoleVerboseFormatter renders every dashboard panel as plain text.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil || view.Snapshot == nil {
		return nil, ErrNilView
	}
	var buf bytes.Buffer
	d := view.Snapshot

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "AGORA GOVERNANCE DASHBOARD")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "Generated: %s\n", view.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(&buf)

	writeHeader(&buf, "GAS POOL")
	fmt.Fprintf(&buf, "Available:          %s\n", SOLAmount(d.GasPool.TotalBalance))
	fmt.Fprintf(&buf, "Used:               %s (%s of %s)\n", SOLAmount(d.GasPool.UsedBalance), FormatWholePercent(view.GasPool.UsagePercent), SOLAmount(view.GasPool.Capacity))
	fmt.Fprintf(&buf, "Subsidized users:   %s\n", CompactInt(d.GasPool.SubsidizedUsers))
	fmt.Fprintf(&buf, "Avg monthly usage:  %s\n", SOLAmount(d.GasPool.AvgMonthlyUsage))
	fmt.Fprintf(&buf, "Active sponsors:    %d\n", d.GasPool.ActiveSponsors)
	for _, s := range view.GasPool.Sponsors {
		fmt.Fprintf(&buf, "  • %-20s %-9s %s (bonus %s, %s tx/month)\n",
			s.Name, s.Tier, SOLAmount(s.Amount), SOLAmount(s.BonusAmount), CompactInt(s.MonthlyLimit))
	}
	fmt.Fprintln(&buf)

	writeHeader(&buf, "TREASURY")
	fmt.Fprintf(&buf, "AGORA balance:      %s\n", AgoraAmount(d.Treasury.AgoraBalance))
	fmt.Fprintf(&buf, "30d inflow:         +%s\n", CompactNumber(d.Treasury.InflowLast30Days))
	fmt.Fprintf(&buf, "30d outflow:        -%s\n", CompactNumber(d.Treasury.OutflowLast30Days))
	fmt.Fprintf(&buf, "30d net flow:       %s\n", CompactNumber(view.Treasury.NetFlow30d))
	fmt.Fprintf(&buf, "Updated:            %s\n", view.Treasury.UpdatedAgo)
	fmt.Fprintf(&buf, "DAO SOL balance:    %s (pending requests %s, remaining %s)\n",
		SOLAmount(d.DAOTreasury.SOLBalance), SOLAmount(view.DAOTreasury.PendingRequested), SOLAmount(view.DAOTreasury.Remaining))
	fmt.Fprintln(&buf)

	writeHeader(&buf, "PROPOSALS")
	fmt.Fprintf(&buf, "Total: %d  Active: %d\n", d.Proposals.TotalCount, d.Proposals.ActiveCount)
	for _, p := range view.Proposals {
		writeProposal(&buf, p)
	}
	fmt.Fprintln(&buf)

	writeHeader(&buf, "DAO SPENDING PROPOSALS")
	for _, p := range view.DAO {
		fmt.Fprintf(&buf, "#%s %s [%s] by %s\n", p.ID, p.Title, p.Status, p.Proposer)
		fmt.Fprintf(&buf, "  Requested: %s  Tier: %d", SOLAmount(p.RequestedAmount), p.Tier)
		if p.ExpectedTier != "" {
			fmt.Fprintf(&buf, " (amount fits %s)", p.ExpectedTier)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  Yes %s  No %s  Abstain %s  Quorum %d/%d  Participation %s\n",
			FormatWholePercent(p.Split.Yes), FormatWholePercent(p.Split.No), FormatWholePercent(p.Split.Abstain),
			p.VotesCast(), p.Quorum, FormatWholePercent(p.ParticipationPc))
		fmt.Fprintf(&buf, "  Time left: %s\n", p.TimeLeft.Text)
	}
	fmt.Fprintln(&buf)

	writeHeader(&buf, "YOUR VOTING")
	fmt.Fprintf(&buf, "Voting power: %d  Pending votes: %d  Votes cast: %d\n",
		d.Voting.UserVotingPower, d.Voting.PendingVotes, d.Voting.TotalVotesCast)
	fmt.Fprintf(&buf, "Next deadline: %s\n", view.Voting.NextDeadline.Text)
	fmt.Fprintln(&buf)

	writeHeader(&buf, "SANCTIONS")
	fmt.Fprintf(&buf, "Active: %d  Historical: %d\n", d.Sanctions.ActiveCount, d.Sanctions.HistoricalCount)
	for _, s := range view.Sanctions {
		fmt.Fprintf(&buf, "%s %s: -%s UBI (%s)\n", s.CountryCode, s.CountryName, FormatPercentage(s.RatePercent), s.Reason)
		fmt.Fprintf(&buf, "  Support %s (%s for / %s against) via %s, expires in %s\n",
			FormatWholePercent(s.SupportPercent), CompactInt(s.VotesFor), CompactInt(s.VotesAgainst), s.ProposalID, s.ExpiresIn.Text)
	}
	for _, h := range view.Historical {
		status := "expired"
		if h.WasLifted {
			status = "lifted: " + h.LiftReason
		}
		fmt.Fprintf(&buf, "%s %s: %s for %s (%s)\n", h.CountryCode, h.CountryName, h.Reason, h.DurationLabel, status)
	}
	fmt.Fprintln(&buf)

	writeHeader(&buf, "PROTOCOL")
	fmt.Fprintf(&buf, "Users:              %s (%s daily active, %s)\n",
		CompactInt(d.Protocol.TotalUsers), CompactInt(d.Protocol.DailyActiveUsers), FormatWholePercent(view.Protocol.DailyActivePercent))
	fmt.Fprintf(&buf, "UBI claimed:        %s AGORA (%s per user)\n", CompactNumber(d.Protocol.TotalUBIClaimed), CommaNumber(view.Protocol.UBIPerUser))
	fmt.Fprintf(&buf, "Supply:             %s circulating of %s (%s)\n",
		CompactNumber(d.Protocol.CirculatingSupply), CompactNumber(d.Protocol.TotalSupply), FormatPercentage(view.Protocol.CirculatingPercent))
	fmt.Fprintf(&buf, "Base tx fee:        %d lamports = %s (%d%% treasury / %d%% burn)\n",
		d.Protocol.BaseTransactionFee, lamports.Format(d.Protocol.BaseTransactionFee), d.Protocol.TreasuryFeeShare, d.Protocol.BurnShare)
	fmt.Fprintln(&buf)

	writeHeader(&buf, "GOVERNANCE RULES")
	for _, n := range GovernanceNotes() {
		fmt.Fprintf(&buf, "• %s\n", n)
	}
	return buf.Bytes(), nil
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func writeProposal(w io.Writer, p domain.ProposalView) {
	fmt.Fprintf(w, "%s %s [%s, %s] by %s\n", p.ID, p.Title, p.Status, p.Type, p.Proposer)
	if p.RequestedAmount.IsPositive() {
		fmt.Fprintf(w, "  Requested: %s\n", AgoraAmount(p.RequestedAmount))
	}
	if p.Status == domain.StatusReview {
		fmt.Fprintf(w, "  In review, %s voting once opened\n", p.VotingPeriodLabel)
		return
	}
	verdict := "failing"
	if p.Passing {
		verdict = "passing"
	}
	fmt.Fprintf(w, "  Yes %s (%s of %s needed)  Votes %s/%s quorum  %s\n",
		FormatWholePercent(p.YesPercent), FormatBps(p.ApprovalBps), FormatBps(p.RequiredBps),
		CompactInt(p.VotesCast()), CompactInt(p.Quorum), verdict)
	left := dash
	if p.TimeLeft != nil {
		left = p.TimeLeft.Text
	}
	fmt.Fprintf(w, "  Time left: %s\n", left)
}
