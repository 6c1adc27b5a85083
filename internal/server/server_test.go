package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-protocol/dashboard/internal/config"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	snap := config.NewSnapshotParser().CreateExampleSnapshot(fixedNow)
	return New(snap, Options{
		AllowedOrigins: origins,
		Now:            func() time.Time { return fixedNow },
	})
}

func doGet(t *testing.T, r http.Handler, path string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doGet(t, newTestRouter(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newTestRouter()

	rec := doGet(t, r, "/healthz")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	rec = doGet(t, r, "/healthz", RequestIDHeader, id)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	rec = doGet(t, r, "/healthz", RequestIDHeader, "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestSnapshotEndpoint(t *testing.T) {
	rec := doGet(t, newTestRouter(), "/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		GasPool struct {
			TotalBalance string `json:"total_balance"`
		} `json:"gas_pool"`
		Protocol struct {
			TotalUsers int64 `json:"total_users"`
		} `json:"protocol"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "7500", body.GasPool.TotalBalance)
	assert.Equal(t, int64(142500), body.Protocol.TotalUsers)
}

func TestViewEndpoint(t *testing.T) {
	rec := doGet(t, newTestRouter(), "/v1/view")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		GasPool struct {
			UsagePercent int `json:"usage_percent"`
		} `json:"gas_pool"`
		Voting struct {
			NextDeadline struct {
				Text string `json:"text"`
			} `json:"next_deadline"`
		} `json:"voting"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 25, body.GasPool.UsagePercent)
	assert.Equal(t, "3d 0h", body.Voting.NextDeadline.Text)
}

func TestProposalEndpoints(t *testing.T) {
	r := newTestRouter()

	rec := doGet(t, r, "/v1/proposals")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		TotalCount int64             `json:"total_count"`
		Proposals  []json.RawMessage `json:"proposals"`
		DAO        []json.RawMessage `json:"dao_proposals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(47), list.TotalCount)
	assert.Len(t, list.Proposals, 3)
	assert.Len(t, list.DAO, 2)

	rec = doGet(t, r, "/v1/proposals/AGP-47")
	require.Equal(t, http.StatusOK, rec.Code)
	var p struct {
		ID         string `json:"id"`
		YesPercent int    `json:"yes_percent"`
		Passing    bool   `json:"passing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "AGP-47", p.ID)
	assert.Equal(t, 67, p.YesPercent)
	assert.True(t, p.Passing)

	rec = doGet(t, r, "/v1/proposals/AGP-1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"err":"proposal not found"}`, rec.Body.String())

	rec = doGet(t, r, "/v1/dao-proposals/002")
	require.Equal(t, http.StatusOK, rec.Code)
	var dao struct {
		Split struct {
			Yes int `json:"yes"`
		} `json:"split"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dao))
	assert.Equal(t, 76, dao.Split.Yes)

	rec = doGet(t, r, "/v1/dao-proposals/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSanctionsEndpoint(t *testing.T) {
	rec := doGet(t, newTestRouter(), "/v1/sanctions")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Active []struct {
			CountryCode string `json:"country_code"`
			RatePercent string `json:"rate_percent"`
		} `json:"active"`
		Historical []struct {
			DurationLabel string `json:"duration_label"`
		} `json:"historical"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Active, 2)
	assert.Equal(t, "XYZ", body.Active[0].CountryCode)
	assert.Equal(t, "10", body.Active[0].RatePercent)
	require.Len(t, body.Historical, 1)
	assert.Equal(t, "90 days", body.Historical[0].DurationLabel)
}

func TestReportEndpoint(t *testing.T) {
	r := newTestRouter()

	rec := doGet(t, r, "/v1/report/html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "AGORA Governance Dashboard")

	rec = doGet(t, r, "/v1/report/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AGORA DASHBOARD SUMMARY")

	rec = doGet(t, r, "/v1/report/pdf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported format")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter()
	doGet(t, r, "/v1/report/csv")

	rec := doGet(t, r, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `agora_dashboard_reports_rendered_total{format="csv"}`)
	assert.Contains(t, rec.Body.String(), "agora_dashboard_views_built_total")
}

func TestCORS(t *testing.T) {
	r := newTestRouter("https://agora.example")
	rec := doGet(t, r, "/healthz", "Origin", "https://agora.example")
	assert.Equal(t, "https://agora.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = doGet(t, r, "/healthz", "Origin", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doGet(t, newTestRouter(), "/healthz", "Origin", "https://anywhere.example")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, "127.0.0.1:0", newTestRouter(), nil) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
