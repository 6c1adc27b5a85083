package output

import (
	"bytes"
	"encoding/csv"

	"github.com/agora-protocol/dashboard/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per protocol or DAO proposal).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string        { return "csv" }
func (c CSVSummarizer) ContentType() string { return "text/csv; charset=utf-8" }
func (c CSVSummarizer) Extension() string   { return "csv" }

func (c CSVSummarizer) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil {
		return nil, ErrNilView
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "ID", "Title", "Status", "RequestedAmount", "VotesYes", "VotesNo", "VotesAbstain", "Quorum", "YesPercent", "QuorumReached", "Passing", "TimeLeft"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range view.Proposals {
		left := dash
		if p.TimeLeft != nil {
			left = p.TimeLeft.Text
		}
		row := []string{
			"protocol",
			p.ID,
			p.Title,
			string(p.Status),
			p.RequestedAmount.StringFixed(2),
			int64ToString(p.VotesYes),
			int64ToString(p.VotesNo),
			"0",
			int64ToString(p.Quorum),
			intToString(p.YesPercent),
			boolToString(p.QuorumReached),
			boolToString(p.Passing),
			left,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for _, p := range view.DAO {
		row := []string{
			"dao",
			p.ID,
			p.Title,
			string(p.Status),
			p.RequestedAmount.StringFixed(2),
			int64ToString(p.VotesYes),
			int64ToString(p.VotesNo),
			int64ToString(p.VotesAbstain),
			int64ToString(p.Quorum),
			intToString(p.Split.Yes),
			boolToString(p.QuorumReached),
			dash,
			p.TimeLeft.Text,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
