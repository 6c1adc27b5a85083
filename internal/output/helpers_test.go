package output

import (
	"testing"
	"time"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
	"github.com/agora-protocol/dashboard/internal/domain"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func buildTestView(t *testing.T) *domain.DashboardView {
	t.Helper()
	snap := config.NewSnapshotParser().CreateExampleSnapshot(fixedNow)
	view, err := calculation.NewViewEngine().BuildView(snap, fixedNow)
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	return view
}
