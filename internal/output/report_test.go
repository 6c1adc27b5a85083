package output_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/internal/output"
)

func exampleView(t *testing.T) *domain.DashboardView {
	t.Helper()
	sp := config.NewSnapshotParser()
	snap := sp.CreateExampleSnapshot(calculation.Now())
	view, err := calculation.NewViewEngine().BuildView(snap, snap.GeneratedAt)
	require.NoError(t, err)
	return view
}

func TestCompactNumberDisplayValues(t *testing.T) {
	assert.Equal(t, "999", output.CompactNumber(decimal.NewFromInt(999)))
	assert.Equal(t, "1.5K", output.CompactNumber(decimal.NewFromInt(1500)))
	assert.Equal(t, "2M", output.CompactNumber(decimal.NewFromInt(2_000_000)))
	assert.Equal(t, "1M", output.CompactNumber(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "1.1K", output.CompactNumber(decimal.NewFromInt(1_050)))
	assert.Equal(t, "-1.1K", output.CompactNumber(decimal.NewFromInt(-1_050)))
	assert.Equal(t, "-2.5M", output.CompactNumber(decimal.NewFromInt(-2_500_000)))
	assert.Equal(t, "-98,765.432", output.CommaNumber(decimal.RequireFromString("-98765.4321")))
	assert.Equal(t, "9,223,372,036,854,775,808", output.CommaNumber(decimal.RequireFromString("9223372036854775808")))
	assert.Equal(t, "123,456,789,012,345,678,901.5 SOL", output.SOLAmount(decimal.RequireFromString("123456789012345678901.5")))
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	view := exampleView(t)
	dir := t.TempDir()

	paths, err := output.GenerateReport(view, "json", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], ".json"))

	paths, err = output.GenerateReport(view, "csv-summary", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], ".csv"))
}

func TestGenerateReport_All(t *testing.T) {
	paths, err := output.GenerateReport(exampleView(t), "all", t.TempDir())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.HasSuffix(paths[0], ".txt"))
	assert.True(t, strings.HasSuffix(paths[1], ".csv"))
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	_, err := output.GenerateReport(exampleView(t), "pdf", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console-lite")
}

func TestRender(t *testing.T) {
	b, f, err := output.Render(exampleView(t), "html-report")
	require.NoError(t, err)
	assert.Equal(t, "html", f.Name())
	ct, ext := output.ContentTypeOf(f)
	assert.Equal(t, "text/html; charset=utf-8", ct)
	assert.Equal(t, "html", ext)
	assert.Contains(t, string(b), "Governance Rules")

	_, _, err = output.Render(nil, "console")
	assert.ErrorIs(t, err, output.ErrNilView)
}
