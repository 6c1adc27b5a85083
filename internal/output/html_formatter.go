package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLFormatter produces a standalone HTML dashboard page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string        { return "html" }
func (h HTMLFormatter) ContentType() string { return "text/html; charset=utf-8" }
func (h HTMLFormatter) Extension() string   { return "html" }

//go:embed templates/dashboard.html.tmpl
var htmlTemplateSource string

// descriptionPolicy strips anything but basic formatting from proposal descriptions.
var descriptionPolicy = bluemonday.UGCPolicy()

// SanitizeDescription returns proposal text that is safe to embed in a page.
func SanitizeDescription(s string) template.HTML {
	return template.HTML(descriptionPolicy.Sanitize(s)) // #nosec G203 -- sanitized above
}

var htmlTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"sol":      SOLAmount,
	"agora":    AgoraAmount,
	"compact":  CompactNumber,
	"count":    CompactInt,
	"comma":    CommaNumber,
	"pct":      FormatPercentage,
	"wholePct": FormatWholePercent,
	"bps":      FormatBps,
	"safe":     SanitizeDescription,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil || view.Snapshot == nil {
		return nil, ErrNilView
	}
	var buf bytes.Buffer
	data := struct {
		*domain.DashboardView
		D       *domain.Dashboard
		Summary ProposalSummary
		Rules   []string
	}{view, view.Snapshot, SummarizeProposals(view), GovernanceNotes()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
