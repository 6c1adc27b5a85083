package output

import (
	"bytes"
	"encoding/csv"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter flattens every figure of the view into section,key,value rows.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string        { return "detailed-csv" }
func (c CSVDetailedExporter) ContentType() string { return "text/csv; charset=utf-8" }
func (c CSVDetailedExporter) Extension() string   { return "csv" }

func (c CSVDetailedExporter) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil || view.Snapshot == nil {
		return nil, ErrNilView
	}
	d := view.Snapshot
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{{"Section", "Key", "Value"}}
	add := func(section, key, value string) { rows = append(rows, []string{section, key, value}) }
	dec := func(section, key string, v decimal.Decimal) { add(section, key, v.String()) }

	dec("gas_pool", "total_balance", d.GasPool.TotalBalance)
	dec("gas_pool", "used_balance", d.GasPool.UsedBalance)
	add("gas_pool", "usage_percent", intToString(view.GasPool.UsagePercent))
	add("gas_pool", "subsidized_users", int64ToString(d.GasPool.SubsidizedUsers))
	dec("gas_pool", "avg_monthly_usage", d.GasPool.AvgMonthlyUsage)
	add("gas_pool", "active_sponsors", int64ToString(d.GasPool.ActiveSponsors))
	for _, s := range view.GasPool.Sponsors {
		dec("sponsor", s.Name+".amount", s.Amount)
		add("sponsor", s.Name+".tier", string(s.Tier))
		dec("sponsor", s.Name+".bonus", s.BonusAmount)
	}

	dec("treasury", "agora_balance", d.Treasury.AgoraBalance)
	dec("treasury", "inflow_30d", d.Treasury.InflowLast30Days)
	dec("treasury", "outflow_30d", d.Treasury.OutflowLast30Days)
	dec("treasury", "net_flow_30d", view.Treasury.NetFlow30d)
	dec("dao_treasury", "sol_balance", d.DAOTreasury.SOLBalance)
	dec("dao_treasury", "total_spent", d.DAOTreasury.TotalSpent)
	dec("dao_treasury", "pending_requested", view.DAOTreasury.PendingRequested)
	dec("dao_treasury", "remaining_after_pending", view.DAOTreasury.Remaining)

	for _, p := range view.Proposals {
		add("proposal", p.ID+".status", string(p.Status))
		add("proposal", p.ID+".yes_percent", intToString(p.YesPercent))
		add("proposal", p.ID+".quorum_percent", intToString(p.QuorumPercent))
		add("proposal", p.ID+".passing", boolToString(p.Passing))
		if p.TimeLeft != nil {
			add("proposal", p.ID+".time_left", p.TimeLeft.Text)
		}
	}
	for _, p := range view.DAO {
		add("dao_proposal", p.ID+".yes_percent", intToString(p.Split.Yes))
		add("dao_proposal", p.ID+".no_percent", intToString(p.Split.No))
		add("dao_proposal", p.ID+".abstain_percent", intToString(p.Split.Abstain))
		add("dao_proposal", p.ID+".quorum_reached", boolToString(p.QuorumReached))
		add("dao_proposal", p.ID+".time_left", p.TimeLeft.Text)
	}

	add("voting", "next_deadline", view.Voting.NextDeadline.Text)
	for _, s := range view.Sanctions {
		dec("sanction", s.CountryCode+".rate_percent", s.RatePercent)
		add("sanction", s.CountryCode+".support_percent", intToString(s.SupportPercent))
		add("sanction", s.CountryCode+".expires_in", s.ExpiresIn.Text)
	}
	for _, h := range view.Historical {
		add("historical_sanction", h.CountryCode+".duration", h.DurationLabel)
	}

	add("protocol", "total_users", int64ToString(d.Protocol.TotalUsers))
	add("protocol", "daily_active_percent", intToString(view.Protocol.DailyActivePercent))
	dec("protocol", "circulating_percent", view.Protocol.CirculatingPercent)
	dec("protocol", "ubi_per_user", view.Protocol.UBIPerUser)

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
