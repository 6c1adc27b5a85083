package calculation

import (
	"errors"
	"time"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/dateutil"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ErrNilDashboard is returned when a view is requested without a snapshot.
var ErrNilDashboard = errors.New("dashboard snapshot is nil")

// ViewEngine derives display values from a dashboard snapshot
type ViewEngine struct {
	Logger Logger
}

// NewViewEngine creates a new view engine
func NewViewEngine() *ViewEngine {
	return &ViewEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the view engine. If nil is provided, a no-op logger is used.
func (ve *ViewEngine) SetLogger(l Logger) {
	if l == nil {
		ve.Logger = NopLogger{}
		return
	}
	ve.Logger = l
}

// BuildView computes every derived value of d as seen at now.
// The snapshot is not modified; the view keeps a pointer to it.
func (ve *ViewEngine) BuildView(d *domain.Dashboard, now time.Time) (*domain.DashboardView, error) {
	if d == nil {
		return nil, ErrNilDashboard
	}

	view := &domain.DashboardView{
		Snapshot:    d,
		GeneratedAt: now,
		GasPool:     ve.gasPoolView(&d.GasPool),
		DAOTreasury: domain.DAOTreasuryView{
			PendingRequested: PendingDAORequests(d.Proposals.DAOProposals),
		},
		Treasury: domain.TreasuryView{
			NetFlow30d: NetFlow(d.Treasury.InflowLast30Days, d.Treasury.OutflowLast30Days),
			UpdatedAgo: humanize.RelTime(d.Treasury.LastUpdated, now, "ago", "from now"),
		},
		Voting: domain.VotingView{NextDeadline: TimeRemaining(d.Voting.NextDeadline, now)},
		Protocol: domain.ProtocolView{
			CirculatingPercent: CirculatingPercent(d.Protocol.CirculatingSupply, d.Protocol.TotalSupply),
			DailyActivePercent: percentOf(d.Protocol.DailyActiveUsers, decimal.NewFromInt(d.Protocol.TotalUsers)),
			UBIPerUser:         PerUser(d.Protocol.TotalUBIClaimed, d.Protocol.TotalUsers),
		},
	}
	view.DAOTreasury.Remaining = d.DAOTreasury.SOLBalance.Sub(view.DAOTreasury.PendingRequested)

	for _, p := range d.Proposals.Items {
		view.Proposals = append(view.Proposals, ve.proposalView(p, now))
	}

	ref := d.GeneratedAt
	if ref.IsZero() {
		ref = now
	}
	for _, p := range d.Proposals.DAOProposals {
		view.DAO = append(view.DAO, ve.daoProposalView(p, &d.DAOTreasury, ref, now))
	}

	for _, s := range d.Sanctions.Active {
		view.Sanctions = append(view.Sanctions, domain.SanctionView{
			ActiveSanction: s,
			RatePercent:    SanctionRateToPercent(s.SanctionRate),
			SupportPercent: SanctionSupportPercent(s.VotesFor, s.VotesAgainst),
			ExpiresIn:      TimeRemaining(s.ExpiresAt, now),
		})
	}
	for _, h := range d.Sanctions.Historical {
		view.Historical = append(view.Historical, domain.HistoricalSanView{
			HistoricalSanction: h,
			DurationLabel:      dateutil.FormatDays(h.Duration),
		})
	}

	ve.Logger.Debugf("built view: %d proposals, %d dao proposals, %d sanctions", len(view.Proposals), len(view.DAO), len(view.Sanctions))
	return view, nil
}

func (ve *ViewEngine) gasPoolView(g *domain.GasPool) domain.GasPoolView {
	gv := domain.GasPoolView{
		UsagePercent: GasPoolUsagePercent(g.TotalBalance, g.UsedBalance),
		Capacity:     g.TotalBalance.Add(g.UsedBalance),
	}
	for _, s := range g.Sponsors {
		sv := domain.SponsorView{Sponsor: s}
		if name, ok := SponsorTierFor(s.Amount, g.Tiers); ok {
			tier := g.Tiers[name]
			sv.QualifiedTier = name
			sv.BonusAmount = SponsorBonus(s.Amount, tier)
			sv.MonthlyLimit = tier.MonthlyLimit
			if name != s.Tier {
				ve.Logger.Warnf("sponsor %q listed as %s but contribution qualifies for %s", s.Name, s.Tier, name)
			}
		}
		gv.Sponsors = append(gv.Sponsors, sv)
	}
	return gv
}

func (ve *ViewEngine) proposalView(p domain.Proposal, now time.Time) domain.ProposalView {
	rule := RuleFor(p.Type)
	pv := domain.ProposalView{
		Proposal:          p,
		YesPercent:        VotePercentage(p.VotesYes, p.VotesNo),
		QuorumPercent:     QuorumProgress(p.VotesCast(), p.Quorum),
		QuorumReached:     QuorumReached(p.VotesCast(), p.Quorum),
		ApprovalBps:       ApprovalBps(p.VotesYes, p.VotesNo),
		RequiredBps:       rule.ApprovalBps,
		Passing:           Passing(p.Type, p.VotesYes, p.VotesNo, p.Quorum),
		VotingPeriodLabel: dateutil.FormatPeriod(rule.VotingPeriod),
	}
	if p.EndTime != nil {
		left := TimeRemaining(*p.EndTime, now)
		pv.TimeLeft = &left
	}
	return pv
}

func (ve *ViewEngine) daoProposalView(p domain.DAOProposal, t *domain.DAOTreasury, ref, now time.Time) domain.DAOProposalView {
	dv := domain.DAOProposalView{
		DAOProposal:     p,
		Split:           VotePercentageWithAbstain(p.VotesYes, p.VotesNo, p.VotesAbstain),
		QuorumReached:   QuorumReached(p.VotesCast(), p.Quorum),
		ParticipationPc: percentOf(p.VotesCast(), decimal.NewFromInt(t.TotalVoters)),
	}
	if name, ok := domain.VotingTierNameFor(p.Tier); ok {
		if rule, ok := t.VotingTiers[name]; ok {
			dv.Rule = &rule
		}
	}
	if name, ok := VotingTierFor(p.RequestedAmount, t.VotingTiers); ok {
		dv.ExpectedTier = name
	}

	deadline, err := DeadlineFromLabel(ref, p.EndsIn)
	if err != nil {
		ve.Logger.Warnf("dao proposal %s: %v", p.ID, err)
		dv.TimeLeft = domain.Remaining{Text: p.EndsIn}
		return dv
	}
	dv.Deadline = &deadline
	dv.TimeLeft = TimeRemaining(deadline, now)
	return dv
}
