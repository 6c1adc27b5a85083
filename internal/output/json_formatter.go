package output

import (
	"encoding/json"

	"github.com/agora-protocol/dashboard/internal/domain"
)

// JSONFormatter serializes the dashboard view as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string        { return "json" }
func (j JSONFormatter) ContentType() string { return "application/json; charset=utf-8" }
func (j JSONFormatter) Extension() string   { return "json" }

func (j JSONFormatter) Format(view *domain.DashboardView) ([]byte, error) {
	if view == nil {
		return nil, ErrNilView
	}
	return json.MarshalIndent(view, "", "  ")
}
